// passtoken реализует выпуск и проверку компактных пропусков-носителей
// (bearer-токенов), привязывающих подписку к водителю.
//
// Формат токена: "<base64url(payload)>.<base64url(hmac-sha256)>", без
// паддинга, ровно один разделитель '.'. Payload — каноничный JSON с
// фиксированным порядком полей (models.PassClaims), поэтому подпись
// воспроизводима между реализациями.
//
// Пакет не делает I/O и не проверяет бизнес-статус подписки: подлинность
// токена отделена от его действительности (см. service.VerifyPass).
// Signer безопасен для конкурентного использования: секрет неизменяем
// после создания.
package passtoken

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rumianagent-hub/parkshare-mvp/internal/models"
)

var (
	// ErrMissingSecret — секрет подписи не задан. Фатальная ошибка
	// конфигурации: сервис не должен стартовать без секрета.
	ErrMissingSecret = errors.New("pass secret is not configured")

	// ErrEmptyClaim — пустой идентификатор подписки или предъявителя.
	ErrEmptyClaim = errors.New("empty claim")

	// ErrMalformedToken — строка не имеет вида "payload.signature"
	// с двумя непустыми сегментами.
	ErrMalformedToken = errors.New("malformed token")

	// ErrSignatureMismatch — подпись не совпала с пересчитанной.
	// Наружу транслируется тем же кодом, что и остальные ошибки формата.
	ErrSignatureMismatch = errors.New("signature mismatch")

	// ErrMalformedPayload — подпись верна, но payload не декодируется.
	// На практике означает выпуск токена несовместимой версией сервиса.
	ErrMalformedPayload = errors.New("malformed payload")
)

// Signer выпускает и проверяет пропуска с общим HMAC-секретом процесса.
type Signer struct {
	secret []byte
}

// New создаёт Signer. Пустой секрет — ошибка конфигурации (fail-fast).
func New(secret string) (*Signer, error) {
	const op = "passtoken.New"

	if secret == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrMissingSecret)
	}

	return &Signer{secret: []byte(secret)}, nil
}

// Issue выпускает пропуск для пары (подписка, предъявитель).
// Момент выпуска фиксируется в payload, поэтому повторные вызовы дают
// текстуально разные токены; оба независимо проходят проверку.
func (s *Signer) Issue(subscriptionID, subjectID string) (string, error) {
	const op = "passtoken.Issue"

	if subscriptionID == "" || subjectID == "" {
		return "", fmt.Errorf("%s: %w", op, ErrEmptyClaim)
	}

	claims := models.PassClaims{
		SubscriptionID: subscriptionID,
		SubjectID:      subjectID,
		IssuedAtMS:     time.Now().UTC().UnixMilli(),
	}

	raw, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	payload := base64.RawURLEncoding.EncodeToString(raw)

	return payload + "." + s.sign(payload), nil
}

// Verify проверяет токен и возвращает его claims.
//
// Порядок проверок фиксирован: формат -> подпись (константное время) ->
// декодирование payload. Никакой проверки срока действия здесь нет —
// это бизнес-решение поверх записи подписки, не свойство формата.
// Токен считается недоверенным входом.
func (s *Signer) Verify(token string) (models.PassClaims, error) {
	const op = "passtoken.Verify"

	payload, sig, ok := strings.Cut(token, ".")
	if !ok || payload == "" || sig == "" || strings.Contains(sig, ".") {
		return models.PassClaims{}, fmt.Errorf("%s: %w", op, ErrMalformedToken)
	}

	if !hmac.Equal([]byte(s.sign(payload)), []byte(sig)) {
		return models.PassClaims{}, fmt.Errorf("%s: %w", op, ErrSignatureMismatch)
	}

	raw, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return models.PassClaims{}, fmt.Errorf("%s: %w", op, ErrMalformedPayload)
	}

	var claims models.PassClaims
	if err := json.Unmarshal(raw, &claims); err != nil {
		return models.PassClaims{}, fmt.Errorf("%s: %w", op, ErrMalformedPayload)
	}

	if claims.SubscriptionID == "" || claims.SubjectID == "" {
		return models.PassClaims{}, fmt.Errorf("%s: %w", op, ErrMalformedPayload)
	}

	return claims, nil
}

// sign считает HMAC-SHA256 по сегменту payload и кодирует его base64url.
func (s *Signer) sign(payload string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload))

	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
