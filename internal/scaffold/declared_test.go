package scaffold

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeclaredNamespace(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		want   string
		wantOK bool
	}{
		{"rendered file", Render(Options{Kind: KindClass, Name: "User", Namespace: `App\Models`}), `App\Models`, true},
		{"strict types", "<?php\ndeclare(strict_types=1);\n\nnamespace App;\n", "App", true},
		{"braced", "<?php\nnamespace Foo\\Bar {\n}\n", `Foo\Bar`, true},
		{"global", "<?php\n\nclass User {}\n", "", false},
		{"namespace keyword in comment", "<?php\n// see namespace docs\nclass A {}\n", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DeclaredNamespace([]byte(tt.src))
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
