// Package document loads, mutates, and serializes YAML documents as
// yaml.Node trees.
//
// Working at the node level rather than through map[string]any keeps the
// original key insertion order intact through a parse, mutate, and marshal
// round trip, so re-serialized specifications diff cleanly against their
// sources. Mapping helpers (MapGet, MapSet, MapEnsure, MapItems) provide
// dictionary-style access over mapping nodes while preserving that order:
// replacing an existing key keeps its position, and new keys are appended
// at the end.
package document
