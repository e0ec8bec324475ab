package render

import (
	"io"

	"github.com/goccy/go-json"

	"github.com/go-drift/counter/pkg/layout"
)

// JSON writes the snapshot of root as indented JSON.
func JSON(w io.Writer, root layout.RenderObject) error {
	data, err := MarshalNode(Snapshot(root))
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// MarshalNode encodes n as indented JSON with a trailing newline.
func MarshalNode(n *Node) ([]byte, error) {
	data, err := json.MarshalIndent(n, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// UnmarshalNode decodes a snapshot written by MarshalNode.
func UnmarshalNode(data []byte) (*Node, error) {
	var n Node
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, err
	}
	return &n, nil
}
