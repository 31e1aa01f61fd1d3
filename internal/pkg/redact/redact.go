// redact — маскировка чувствительных значений перед записью в логи.
// Пропуск — bearer-токен: его попадание в логи эквивалентно утечке.
package redact

// Plate маскирует номерной знак, оставляя первые два символа.
func Plate(s string) string {
	r := []rune(s)
	if len(r) <= 2 {
		return "***"
	}

	return string(r[:2]) + "***"
}

func Token() string  { return "[REDACTED_TOKEN]" }
func Secret() string { return "[REDACTED_SECRET]" }
