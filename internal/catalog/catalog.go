// Package catalog builds the toolbox from a JSON document. The default
// document is embedded; a file can replace it.
package catalog

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/osse101/Toolbox_Go/internal/domain"
	"github.com/osse101/Toolbox_Go/internal/logger"
	"github.com/osse101/Toolbox_Go/internal/tool"
	"github.com/osse101/Toolbox_Go/internal/validation"
)

//go:embed data/*.json
var files embed.FS

// Entry binds a toolbox key to a tool instance
type Entry struct {
	Key  string
	Tool tool.Tool
}

// Options adjusts how tools are built
type Options struct {
	// Path replaces the embedded catalog when set
	Path string
	// WearOnInvalidInterval is applied to every measuring tape
	WearOnInvalidInterval bool
}

// Document is the JSON shape of a catalog
type Document struct {
	Tools []Definition `json:"tools"`
}

// Definition describes one tool. Variant fields are ignored by other kinds.
type Definition struct {
	Key      string          `json:"key"`
	Kind     domain.ToolKind `json:"kind"`
	Name     string          `json:"name"`
	Material string          `json:"material"`
	Weight   float64         `json:"weight"`
	Wear     int             `json:"wear,omitempty"`

	HeadType     string  `json:"head_type,omitempty"`
	ClawType     string  `json:"claw_type,omitempty"`
	HandleLength int     `json:"handle_length,omitempty"`
	PowerRating  float64 `json:"power_rating,omitempty"`
	Cordless     bool    `json:"cordless,omitempty"`
	Speed        int     `json:"speed,omitempty"`
	Bit          string  `json:"bit,omitempty"`
	BladeType    string  `json:"blade_type,omitempty"`
	Length       float64 `json:"length,omitempty"`
	Corded       bool    `json:"corded,omitempty"`
	TipType      string  `json:"tip_type,omitempty"`
	Magnetized   bool    `json:"magnetized,omitempty"`
	Size         int     `json:"size,omitempty"`
	Ratcheting   bool    `json:"ratcheting,omitempty"`
}

// Default returns the embedded catalog document
func Default() []byte {
	data, err := files.ReadFile(catalogFile)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog missing: %v", err))
	}
	return data
}

// NewValidator returns a schema validator with the catalog schema registered
func NewValidator() (validation.SchemaValidator, error) {
	schema, err := files.ReadFile(schemaFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded schema: %w", err)
	}
	v := validation.NewSchemaValidator()
	if err := v.AddSchema(SchemaName, schema); err != nil {
		return nil, err
	}
	return v, nil
}

// Load reads the catalog named by opts.Path, or the embedded one, and builds its tools
func Load(ctx context.Context, opts Options) ([]Entry, error) {
	log := logger.FromContext(ctx)

	data := Default()
	if opts.Path != "" {
		log.Info(LogMsgCatalogOverride, "path", opts.Path)
		var err error
		data, err = os.ReadFile(opts.Path)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidCatalog, err)
		}
	}

	entries, err := Parse(data, opts)
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgCatalogLoaded, "tools", len(entries))
	return entries, nil
}

// Parse validates data against the catalog schema and builds every tool in document order
func Parse(data []byte, opts Options) ([]Entry, error) {
	v, err := NewValidator()
	if err != nil {
		return nil, err
	}
	if err := v.ValidateBytes(data, SchemaName); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidCatalog, err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidCatalog, err)
	}

	seen := make(map[string]bool, len(doc.Tools))
	entries := make([]Entry, 0, len(doc.Tools))
	for _, def := range doc.Tools {
		if seen[def.Key] {
			return nil, fmt.Errorf("%w: duplicate key %q", domain.ErrInvalidCatalog, def.Key)
		}
		seen[def.Key] = true

		t, err := Build(def, opts)
		if err != nil {
			return nil, fmt.Errorf("%w: key %q: %v", domain.ErrInvalidCatalog, def.Key, err)
		}
		entries = append(entries, Entry{Key: def.Key, Tool: t})
	}
	return entries, nil
}

// Build constructs the tool described by def
func Build(def Definition, opts Options) (tool.Tool, error) {
	var t tool.Tool
	switch def.Kind {
	case domain.ToolKindHammer:
		h := tool.NewHammer(def.Name, def.Material, def.Weight, def.HeadType, def.ClawType, def.HandleLength)
		h.SetWear(def.Wear)
		t = h
	case domain.ToolKindDrill:
		d := tool.NewDrill(def.Name, def.Material, def.Weight, def.PowerRating, def.Cordless, def.Speed)
		if def.Bit != "" {
			if !d.Bits().Contains(def.Bit) {
				return nil, fmt.Errorf("%w: bit %q", domain.ErrInvalidSelection, def.Bit)
			}
			d.Bit = def.Bit
		}
		d.SetWear(def.Wear)
		t = d
	case domain.ToolKindSaw:
		s := tool.NewSaw(def.Name, def.Material, def.Weight, def.BladeType, def.Length, def.Corded)
		if !s.Blades().Contains(def.BladeType) {
			return nil, fmt.Errorf("%w: blade %q", domain.ErrInvalidSelection, def.BladeType)
		}
		s.SetWear(def.Wear)
		t = s
	case domain.ToolKindScrewdriver:
		s := tool.NewScrewdriver(def.Name, def.Material, def.Weight, def.TipType, def.Length, def.Magnetized)
		if !s.Tips().Contains(def.TipType) {
			return nil, fmt.Errorf("%w: tip %q", domain.ErrInvalidSelection, def.TipType)
		}
		s.SetWear(def.Wear)
		t = s
	case domain.ToolKindMeasuringTape:
		m := tool.NewMeasuringTape(def.Name, def.Material, def.Weight, def.Length)
		m.WearOnInvalidInterval = opts.WearOnInvalidInterval
		m.SetWear(def.Wear)
		t = m
	case domain.ToolKindWrench:
		w := tool.NewWrench(def.Name, def.Material, def.Weight, def.Size, def.Ratcheting)
		if !w.Sizes().Contains(def.Size) {
			return nil, fmt.Errorf("%w: size %d", domain.ErrInvalidSelection, def.Size)
		}
		w.SetWear(def.Wear)
		t = w
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownToolKind, def.Kind)
	}
	return t, nil
}
