package product_map

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dinerozz/product-map-backend/internal/service/journey"
)

// Source откуда берутся лог скриншотов и описания воронок.
type Source interface {
	Name() string
	ReadMetadata(ctx context.Context) (string, error)
	ReadFunnels(ctx context.Context) ([]journey.FunnelDef, error)
}

type FileSource struct {
	MetadataPath string
	FunnelsPath  string
}

func NewFileSource(metadataPath, funnelsPath string) *FileSource {
	return &FileSource{
		MetadataPath: metadataPath,
		FunnelsPath:  funnelsPath,
	}
}

func (s *FileSource) Name() string {
	return "file:" + s.MetadataPath
}

func (s *FileSource) ReadMetadata(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(s.MetadataPath)
	if err != nil {
		return "", fmt.Errorf("failed to read metadata log: %w", err)
	}

	return string(data), nil
}

// ReadFunnels читает воронки из JSON или YAML. Пустой путь означает отсутствие воронок.
func (s *FileSource) ReadFunnels(ctx context.Context) ([]journey.FunnelDef, error) {
	if s.FunnelsPath == "" {
		return nil, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.FunnelsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read funnels: %w", err)
	}

	return DecodeFunnels(data, filepath.Ext(s.FunnelsPath))
}

// DecodeFunnels разбирает список воронок. Формат определяется расширением файла,
// всё кроме .yaml/.yml считается JSON. Допускается как массив, так и объект с полем funnels.
func DecodeFunnels(data []byte, ext string) ([]journey.FunnelDef, error) {
	var (
		funnels []journey.FunnelDef
		wrapped struct {
			Funnels []journey.FunnelDef `json:"funnels" yaml:"funnels"`
		}
	)

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &funnels); err != nil {
			if err := yaml.Unmarshal(data, &wrapped); err != nil {
				return nil, fmt.Errorf("failed to parse funnels yaml: %w", err)
			}
			funnels = wrapped.Funnels
		}
	default:
		if err := json.Unmarshal(data, &funnels); err != nil {
			if err := json.Unmarshal(data, &wrapped); err != nil {
				return nil, fmt.Errorf("failed to parse funnels json: %w", err)
			}
			funnels = wrapped.Funnels
		}
	}

	if err := journey.ValidateAll(funnels); err != nil {
		return nil, err
	}

	return funnels, nil
}
