package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

type SPAHandler struct {
	staticDir string
}

func NewSPAHandler(staticDir string) *SPAHandler {
	return &SPAHandler{staticDir: staticDir}
}

// Serve entrega o shell do frontend para qualquer rota fora de /api:
// arquivo estático quando existe, senão o index.html (roteamento fica
// no cliente). Rota /api desconhecida é 404 JSON.
func (h *SPAHandler) Serve(c *gin.Context) {
	path := c.Request.URL.Path

	if strings.HasPrefix(path, "/api") {
		c.JSON(http.StatusNotFound, gin.H{"error": "Endpoint não encontrado"})
		return
	}

	candidate := filepath.Join(h.staticDir, filepath.Clean("/"+path))
	if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
		c.File(candidate)
		return
	}

	index := filepath.Join(h.staticDir, "index.html")
	if _, err := os.Stat(index); err != nil {
		c.Status(http.StatusNotFound)
		return
	}
	c.File(index)
}
