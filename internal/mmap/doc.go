// Package mmap maps embedding and lexicon files read-only into memory.
//
// Embedding files run to hundreds of megabytes and are parsed exactly once,
// front to back. Mapping them avoids a second copy through a read buffer and
// lets the kernel read ahead when the mapping is advised as sequential:
//
//	m, err := mmap.Open("zh.vec")
//	if err != nil { ... }
//	defer m.Close()
//
//	_ = m.Advise(mmap.AccessSequential)
//	data := m.Bytes()
//
// On platforms without mmap(2) the file is read into a heap buffer and
// Advise is a no-op.
package mmap
