package domain

// PendingSplit is a staged split: children are validated and fingerprinted
// but nothing is persisted yet. It exists only in memory, so abandoning it
// (the user cancels the editor without saving) leaves the store untouched.
//
// Once committed, each child is linked to its parent and the parent becomes
// a "master" record: it stays in the store so a statement view can render
// the original line, but it is excluded from every aggregate sum because its
// value is already represented by its children.
type PendingSplit struct {
	Parent   Transaction
	Children []Transaction // Unsaved; hashes already computed
}
