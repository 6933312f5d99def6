package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "house.jpg", "house.jpg"},
		{"spaces become underscores", "my house photo.jpg", "my_house_photo.jpg"},
		{"path components stripped", "../../etc/passwd", "passwd"},
		{"windows path stripped", `C:\photos\house.jpg`, "house.jpg"},
		{"unsafe characters dropped", "ho me/ph#oto!.jpg", "photo.jpg"},
		{"leading dots stripped", "..hidden.png", "hidden.png"},
		{"nothing left", "???", "unnamed"},
		{"empty", "", "unnamed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFilename(tt.in))
		})
	}
}
