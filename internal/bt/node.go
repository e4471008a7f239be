// File: internal/bt/node.go
package bt

import "context"

// Node is the contract between a leaf node and the host scheduler. Tick must
// return promptly; anything long-running is delegated to a collaborator and
// observed on a later tick.
type Node interface {
	// Name identifies the node in logs and tree documents.
	Name() string
	// Tick advances the node by one scheduler cycle.
	Tick(ctx context.Context) Status
}

// NodeFunc adapts a plain function into a Node.
type NodeFunc struct {
	NodeName string
	Fn       func(ctx context.Context) Status
}

func (n NodeFunc) Name() string { return n.NodeName }

func (n NodeFunc) Tick(ctx context.Context) Status { return n.Fn(ctx) }
