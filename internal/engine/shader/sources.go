package shader

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed glsl/*.vert glsl/*.frag
var sources embed.FS

// ErrUnknownShader is returned for a shader name with no embedded source.
var ErrUnknownShader = errors.New("shader: unknown shader")

// Stage is a programmable pipeline stage.
type Stage int

const (
	Vertex Stage = iota
	Pixel
)

func (s Stage) String() string {
	switch s {
	case Vertex:
		return "vertex"
	case Pixel:
		return "pixel"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

func (s Stage) ext() string {
	if s == Vertex {
		return ".vert"
	}
	return ".frag"
}

// Source returns the GLSL for the named shader.
func Source(stage Stage, name string) (string, error) {
	if name == "" || strings.ContainsAny(name, "/\\.") {
		return "", fmt.Errorf("%w: %s %q", ErrUnknownShader, stage, name)
	}
	data, err := sources.ReadFile(path.Join("glsl", name+stage.ext()))
	if err != nil {
		return "", fmt.Errorf("%w: %s %q", ErrUnknownShader, stage, name)
	}
	return string(data), nil
}

// Names lists the embedded shaders for a stage, sorted.
func Names(stage Stage) []string {
	matches, _ := fs.Glob(sources, "glsl/*"+stage.ext())
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(path.Base(m), stage.ext()))
	}
	sort.Strings(names)
	return names
}
