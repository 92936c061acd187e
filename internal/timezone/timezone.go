package timezone

import "time"

const DefaultTimezone = "America/Sao_Paulo"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// DateKey é a chave de dia usada na coluna data.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// MonthKey é o prefixo ano-mês dos relatórios.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}
