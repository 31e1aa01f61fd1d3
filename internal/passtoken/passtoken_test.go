package passtoken

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testSigner(t *testing.T) *Signer {
	t.Helper()
	s, err := New("unit-test-secret")
	require.NoError(t, err)
	return s
}

func TestNew_EmptySecret_Fails(t *testing.T) {
	_, err := New("")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrMissingSecret)
}

func TestIssue_Verify_RoundTrip(t *testing.T) {
	s := testSigner(t)

	before := time.Now().UTC()
	token, err := s.Issue("sub_123", "user_abc")
	require.NoError(t, err)
	after := time.Now().UTC()

	claims, err := s.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "sub_123", claims.SubscriptionID)
	require.Equal(t, "user_abc", claims.SubjectID)

	issued := claims.IssuedAt()
	require.False(t, issued.Before(before.Truncate(time.Millisecond)))
	require.False(t, issued.After(after))
}

func TestIssue_EmptyIdentifiers(t *testing.T) {
	s := testSigner(t)

	_, err := s.Issue("", "user_abc")
	require.ErrorIs(t, err, ErrEmptyClaim)

	_, err = s.Issue("sub_123", "")
	require.ErrorIs(t, err, ErrEmptyClaim)
}

func TestIssue_TwoTokensDiffer_BothVerify(t *testing.T) {
	s := testSigner(t)

	t1, err := s.Issue("sub_123", "user_abc")
	require.NoError(t, err)

	time.Sleep(2 * time.Millisecond)

	t2, err := s.Issue("sub_123", "user_abc")
	require.NoError(t, err)

	require.NotEqual(t, t1, t2)

	for _, tok := range []string{t1, t2} {
		claims, err := s.Verify(tok)
		require.NoError(t, err)
		require.Equal(t, "sub_123", claims.SubscriptionID)
	}
}

func TestVerify_Malformed(t *testing.T) {
	s := testSigner(t)

	token, err := s.Issue("sub_123", "user_abc")
	require.NoError(t, err)

	cases := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"no separator", strings.ReplaceAll(token, ".", "")},
		{"two separators", token + ".extra"},
		{"empty payload", "." + strings.SplitN(token, ".", 2)[1]},
		{"empty signature", strings.SplitN(token, ".", 2)[0] + "."},
		{"only dot", "."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Verify(tc.token)
			require.Error(t, err)
			require.ErrorIs(t, err, ErrMalformedToken)
		})
	}
}

func TestVerify_TamperedSignature_EveryPosition(t *testing.T) {
	s := testSigner(t)

	token, err := s.Issue("sub_123", "user_abc")
	require.NoError(t, err)

	payload, sig, ok := strings.Cut(token, ".")
	require.True(t, ok)

	for i := 0; i < len(sig); i++ {
		flipped := flipBase64Char(sig, i)
		_, err := s.Verify(payload + "." + flipped)
		require.Error(t, err, "flipped signature position %d", i)
		require.ErrorIs(t, err, ErrSignatureMismatch)
	}
}

func TestVerify_TamperedPayload_IsSignatureMismatch(t *testing.T) {
	s := testSigner(t)

	token, err := s.Issue("sub_123", "user_abc")
	require.NoError(t, err)

	payload, sig, ok := strings.Cut(token, ".")
	require.True(t, ok)

	for i := 0; i < len(payload); i++ {
		flipped := flipBase64Char(payload, i)
		_, err := s.Verify(flipped + "." + sig)
		require.Error(t, err, "flipped payload position %d", i)
		// Искажённый payload не должен тихо приниматься с другими полями:
		// подпись считается по сегменту, поэтому это всегда mismatch.
		require.ErrorIs(t, err, ErrSignatureMismatch)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	s1 := testSigner(t)
	s2, err := New("another-secret")
	require.NoError(t, err)

	token, err := s1.Issue("sub_123", "user_abc")
	require.NoError(t, err)

	_, err = s2.Verify(token)
	require.ErrorIs(t, err, ErrSignatureMismatch)
}

func TestVerify_ValidSignature_GarbagePayload(t *testing.T) {
	s := testSigner(t)

	// Подписываем вручную сегмент, который не является JSON-объектом claims.
	payload := base64.RawURLEncoding.EncodeToString([]byte("not-json"))
	mac := hmac.New(sha256.New, []byte("unit-test-secret"))
	mac.Write([]byte(payload))
	sig := base64.RawURLEncoding.EncodeToString(mac.Sum(nil))

	_, err := s.Verify(payload + "." + sig)
	require.ErrorIs(t, err, ErrMalformedPayload)
}

func TestVerify_ValidSignature_EmptyClaims(t *testing.T) {
	s := testSigner(t)

	payload := base64.RawURLEncoding.EncodeToString([]byte(`{"sid":"","sub":"","iat":0}`))
	mac := hmac.New(sha256.New, []byte("unit-test-secret"))
	mac.Write([]byte(payload))
	sig := base64.RawURLEncoding.EncodeToString(mac.Sum(nil))

	_, err := s.Verify(payload + "." + sig)
	require.ErrorIs(t, err, ErrMalformedPayload)
}

// flipBase64Char заменяет символ на позиции i другим символом алфавита
// base64url, чтобы строка осталась декодируемой.
func flipBase64Char(s string, i int) string {
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

	b := []byte(s)
	repl := alphabet[0]
	if b[i] == repl {
		repl = alphabet[1]
	}
	b[i] = repl

	return string(b)
}
