package index

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/glint-dev/glint/pkg/value"
)

// snapshot is the YAML document set format loaded into a Memory index:
//
//	documents:
//	  notes/today.md:
//	    title: "Today"
//	    tags: [daily, log]
//	  notes/ideas.md:
//	    title: "Ideas"
type snapshot struct {
	Documents map[string]map[string]any `yaml:"documents"`
}

// LoadSnapshot reads a YAML document set from path into the index.
// Each document's fields are classified into the value model. The index
// revision advances once per document loaded.
func LoadSnapshot(m *Memory, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("index: reading snapshot: %w", err)
	}
	return LoadSnapshotBytes(m, data)
}

// LoadSnapshotBytes loads a YAML document set from memory.
func LoadSnapshotBytes(m *Memory, data []byte) (int, error) {
	var snap snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return 0, fmt.Errorf("index: parsing snapshot: %w", err)
	}

	loaded := 0
	for path, fields := range snap.Documents {
		doc, ok := value.Of(normalizeYAML(fields)).(*value.Record)
		if !ok {
			continue
		}
		m.Put(path, doc)
		loaded++
	}
	return loaded, nil
}

// normalizeYAML converts yaml.v3's map[string]interface{} trees into
// the shapes value.Of classifies. yaml.v3 already decodes mappings as
// map[string]interface{}, so this mainly guards nested sequences.
func normalizeYAML(v any) any {
	switch x := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, item := range x {
			out[k] = normalizeYAML(item)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, item := range x {
			out[i] = normalizeYAML(item)
		}
		return out
	default:
		return v
	}
}
