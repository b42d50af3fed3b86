package core

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/devblok/ember/gpu"
)

// LoadShaderSources walks dir and reads every GLSL source it finds.
// The stage is taken from the file extension, .vert for vertex and
// .frag for fragment shaders, anything else is skipped. Sources and
// stage types are returned in matching order.
func LoadShaderSources(dir string) ([]string, []gpu.ShaderType, error) {
	var (
		sources []string
		stages  []gpu.ShaderType
	)
	if err := filepath.Walk(dir, func(path string, f os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if f.IsDir() {
			return nil
		}

		var stage gpu.ShaderType
		switch strings.ToLower(filepath.Ext(f.Name())) {
		case ".vert":
			stage = gpu.VertexShaderType
		case ".frag":
			stage = gpu.FragmentShaderType
		default:
			return nil
		}

		src, err := ioutil.ReadFile(path)
		if err != nil {
			return err
		}
		sources = append(sources, string(src))
		stages = append(stages, stage)
		return nil
	}); err != nil {
		return nil, nil, err
	}
	return sources, stages, nil
}
