package model

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Decode parses a task file.
// An empty document decodes to an empty task file. If next_id is missing or
// behind the highest stored ID (hand-edited files), it is moved past it.
func Decode(data []byte) (*TaskFile, error) {
	f := NewTaskFile()
	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("failed to parse task file: %w", err)
	}

	if f.Version == 0 {
		f.Version = FileVersion
	}
	if f.Version > FileVersion {
		return nil, fmt.Errorf("task file version %d is newer than supported version %d", f.Version, FileVersion)
	}

	maxNum := 0
	for _, t := range f.Tasks {
		if n := ExtractNumber(t.ID); n > maxNum {
			maxNum = n
		}
	}
	if f.NextID <= maxNum {
		f.NextID = maxNum + 1
	}

	return f, nil
}

// Encode renders a task file as YAML.
// Field order is fixed and tasks keep their order.
func Encode(f *TaskFile) ([]byte, error) {
	data, err := yaml.Marshal(buildFileNode(f))
	if err != nil {
		return nil, fmt.Errorf("failed to encode task file: %w", err)
	}
	return data, nil
}

// buildFileNode creates a yaml.Node tree for a TaskFile with proper formatting.
func buildFileNode(f *TaskFile) *yaml.Node {
	doc := &yaml.Node{Kind: yaml.MappingNode}

	addIntField(doc, "version", f.Version)
	addIntField(doc, "next_id", f.NextID)

	if len(f.Tasks) > 0 {
		tasksNode := &yaml.Node{Kind: yaml.SequenceNode}
		for i := range f.Tasks {
			tasksNode.Content = append(tasksNode.Content, buildTaskNode(&f.Tasks[i]))
		}
		doc.Content = append(doc.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: "tasks"},
			tasksNode,
		)
	}

	return doc
}

func buildTaskNode(t *Task) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode}

	addStringField(node, "id", t.ID)
	if t.Title != "" {
		addStringField(node, "title", t.Title)
	}
	addTimeField(node, "created", t.Created)
	addTimeField(node, "updated", t.Updated)

	return node
}

// Helper functions for building yaml.Node

func addStringField(node *yaml.Node, key, value string) {
	node.Content = append(node.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Value: value, Tag: "!!str"},
	)
}

func addIntField(node *yaml.Node, key string, value int) {
	node.Content = append(node.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Value: fmt.Sprintf("%d", value), Tag: "!!int"},
	)
}

func addTimeField(node *yaml.Node, key string, t time.Time) {
	node.Content = append(node.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Value: t.Format(time.RFC3339)},
	)
}
