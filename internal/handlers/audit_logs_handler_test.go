package handlers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barbeariamendes/barbearia-api/internal/models"
)

func seedAuditLog(t *testing.T, env *testEnv, action, entity string, age time.Duration) {
	t.Helper()

	entry := models.AuditLog{
		Action:    action,
		Entity:    entity,
		CreatedAt: time.Now().Add(-age),
	}
	require.NoError(t, env.db.Create(&entry).Error)
}

func TestAuditLogsRequireAuth(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/audit-logs", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuditLogsNewestFirst(t *testing.T) {
	env := newTestEnv(t)
	token := env.token(t, env.seedUser(t, "admin", "s3nh4"))

	seedAuditLog(t, env, "create", "cliente", 3*time.Hour)
	seedAuditLog(t, env, "update", "cliente", 2*time.Hour)
	seedAuditLog(t, env, "delete", "agendamento", time.Hour)

	rec := env.do(t, http.MethodGet, "/api/audit-logs", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	list := decodeList(t, rec)
	require.Len(t, list, 3)
	assert.Equal(t, "delete", list[0]["action"])
	assert.Equal(t, "update", list[1]["action"])
	assert.Equal(t, "create", list[2]["action"])
}

func TestAuditLogsLimitIsCapped(t *testing.T) {
	env := newTestEnv(t)
	token := env.token(t, env.seedUser(t, "admin", "s3nh4"))

	for i := 0; i < 205; i++ {
		seedAuditLog(t, env, fmt.Sprintf("op-%d", i), "cliente", time.Duration(i)*time.Minute)
	}

	rec := env.do(t, http.MethodGet, "/api/audit-logs?limit=500", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeList(t, rec), 200)

	rec = env.do(t, http.MethodGet, "/api/audit-logs?limit=2", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeList(t, rec)
	require.Len(t, list, 2)
	assert.Equal(t, "op-0", list[0]["action"])
}

func TestAuditLogsFilterByEntityAndAction(t *testing.T) {
	env := newTestEnv(t)
	token := env.token(t, env.seedUser(t, "admin", "s3nh4"))

	seedAuditLog(t, env, "create", "cliente", 3*time.Hour)
	seedAuditLog(t, env, "create", "agendamento", 2*time.Hour)
	seedAuditLog(t, env, "delete", "agendamento", time.Hour)

	rec := env.do(t, http.MethodGet, "/api/audit-logs?entity=agendamento", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeList(t, rec), 2)

	rec = env.do(t, http.MethodGet, "/api/audit-logs?entity=agendamento&action=create", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeList(t, rec)
	require.Len(t, list, 1)
	assert.Equal(t, "create", list[0]["action"])
	assert.Equal(t, "agendamento", list[0]["entity"])
}

func TestAuditLogsEmptyStoreReturnsEmptyList(t *testing.T) {
	env := newTestEnv(t)
	token := env.token(t, env.seedUser(t, "admin", "s3nh4"))

	rec := env.do(t, http.MethodGet, "/api/audit-logs", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeList(t, rec))
}
