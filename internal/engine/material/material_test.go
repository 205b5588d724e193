package material

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		vs      VertexShader
		ps      PixelShader
		wantErr bool
	}{
		{"valid", 1, 2, false},
		{"zero vertex shader", 0, 2, true},
		{"zero pixel shader", 1, 0, true},
		{"both zero", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tint := mgl32.Vec4{1, 0.5, 0.25, 1}
			m, err := New(tt.vs, tt.ps, tint)
			if tt.wantErr {
				if !errors.Is(err, ErrNilShader) {
					t.Fatalf("New() error = %v, want ErrNilShader", err)
				}
				if m != nil {
					t.Error("New() should return nil material on error")
				}
				return
			}
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if m.VertexShader() != tt.vs || m.PixelShader() != tt.ps {
				t.Errorf("shaders = (%d, %d), want (%d, %d)", m.VertexShader(), m.PixelShader(), tt.vs, tt.ps)
			}
			if m.Tint() != tint {
				t.Errorf("Tint() = %v, want %v", m.Tint(), tint)
			}
		})
	}
}

func TestSetters(t *testing.T) {
	m, err := New(1, 2, mgl32.Vec4{1, 1, 1, 1})
	if err != nil {
		t.Fatal(err)
	}

	if err := m.SetVertexShader(0); !errors.Is(err, ErrNilShader) {
		t.Errorf("SetVertexShader(0) error = %v, want ErrNilShader", err)
	}
	if err := m.SetPixelShader(0); !errors.Is(err, ErrNilShader) {
		t.Errorf("SetPixelShader(0) error = %v, want ErrNilShader", err)
	}
	if m.VertexShader() != 1 || m.PixelShader() != 2 {
		t.Error("rejected setters must leave the material unchanged")
	}

	if err := m.SetVertexShader(7); err != nil {
		t.Errorf("SetVertexShader(7) error = %v", err)
	}
	if err := m.SetPixelShader(8); err != nil {
		t.Errorf("SetPixelShader(8) error = %v", err)
	}
	m.SetTint(mgl32.Vec4{0, 1, 0, 0.5})

	if m.VertexShader() != 7 || m.PixelShader() != 8 {
		t.Errorf("shaders = (%d, %d), want (7, 8)", m.VertexShader(), m.PixelShader())
	}
	if m.Tint() != (mgl32.Vec4{0, 1, 0, 0.5}) {
		t.Errorf("Tint() = %v", m.Tint())
	}
}
