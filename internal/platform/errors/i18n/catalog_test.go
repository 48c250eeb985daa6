package i18n

import (
	"fmt"
	"testing"

	apperrors "github.com/louisbranch/rolldice/internal/platform/errors"
)

func TestGetCatalogFallback(t *testing.T) {
	base := GetCatalog("en-US")
	if base == nil {
		t.Fatal("expected base catalog")
	}
	fallback := GetCatalog("missing-locale")
	if fallback != base {
		t.Fatal("expected fallback to en-US catalog")
	}
	if GetCatalog("") != base {
		t.Fatal("expected blank locale to use en-US catalog")
	}
}

func TestFormatFallbacks(t *testing.T) {
	cat := NewCatalog(map[Code]string{
		"code": "hello {{.Name}}",
	})

	if cat.Format("unknown", nil) != "unknown" {
		t.Fatal("expected code fallback when template missing")
	}
	if cat.Format("code", nil) != "hello <no value>" {
		t.Fatal("expected template to render missing metadata")
	}
}

func TestFormatTemplateErrorFallback(t *testing.T) {
	cat := NewCatalog(map[Code]string{
		"code": "{{ if .Name }}",
	})
	if cat.Format("code", map[string]string{"Name": "X"}) != "{{ if .Name }}" {
		t.Fatal("expected template fallback on parse error")
	}
}

func TestGetCatalogCachesLocale(t *testing.T) {
	first := GetCatalog("pt-BR")
	if first == GetCatalog("en-US") {
		t.Fatal("expected pt-BR to have its own catalog")
	}
	if GetCatalog("pt-BR") != first {
		t.Fatal("expected pt-BR catalog to be cached")
	}
}

func TestMessageRendersNotationErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		locale string
		want   string
	}{
		{
			name:   "dice spec en-US",
			err:    apperrors.WithMetadata(apperrors.CodeNotationInvalidDiceSpec, "invalid dice spec", map[string]string{"Term": "d6", "MaxCount": "100000"}),
			locale: "en-US",
			want:   "invalid dice spec d6: count (at most 100000) and faces must be positive integers and their product must fit in an integer",
		},
		{
			name:   "total out of range pt-BR",
			err:    apperrors.WithMetadata(apperrors.CodeNotationTotalOutOfRange, "out of range", map[string]string{"Expression": "9223372036854775807+1"}),
			locale: "pt-BR",
			want:   "o total de 9223372036854775807+1 está fora do limite",
		},
		{
			name:   "modifier pt-BR",
			err:    apperrors.WithMetadata(apperrors.CodeNotationInvalidModifier, "invalid modifier", map[string]string{"Term": "abc"}),
			locale: "pt-BR",
			want:   "modificador inválido abc: deve ser um inteiro",
		},
		{
			name:   "expression wrapped",
			err:    fmt.Errorf("roll: %w", apperrors.WithMetadata(apperrors.CodeNotationInvalidExpression, "empty term", map[string]string{"Expression": "3+", "Position": "2"})),
			locale: "en-US",
			want:   "invalid expression 3+: term 2 is empty",
		},
		{
			name:   "plain error",
			err:    fmt.Errorf("boom"),
			locale: "en-US",
			want:   "an unexpected error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Message(tt.err, tt.locale); got != tt.want {
				t.Fatalf("Message() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMessageNilError(t *testing.T) {
	if got := Message(nil, "en-US"); got != "" {
		t.Fatalf("expected empty message, got %q", got)
	}
}
