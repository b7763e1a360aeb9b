package bookmarktree

import "encoding/json"

// EncodeTree serializes a tree for the host boundary. It is the compact
// counterpart of SerializeToJSON.
func EncodeTree(t Tree) ([]byte, error) {
	return json.Marshal(t)
}

// DecodeTree parses a boundary payload back into a tree. A payload that does
// not match the node shape yields a DecodeError.
func DecodeTree(data []byte) (Tree, error) {
	var t Tree
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, &DecodeError{Err: err}
	}
	return t, nil
}

// DecodeNode parses a single node payload, as handed to Add.
func DecodeNode(data []byte) (*Node, error) {
	var n Node
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, &DecodeError{Err: err}
	}
	return &n, nil
}
