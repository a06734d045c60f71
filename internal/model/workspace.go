// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Workspace, an in-memory view of all parsed files.
//
// Settings are inherited through directory initialization files: a suite
// file is governed first by its own settings table, then by the __init__
// file of its directory, then by the __init__ file of the parent directory
// and so on up to the workspace root. Ancestors returns exactly that chain,
// nearest first.
package model

import (
	"path"
	"sort"
	"strings"
)

// Workspace holds parsed files by path.
type Workspace struct {
	files map[string]*File
}

// NewWorkspace creates a workspace containing the given files.
func NewWorkspace(files ...*File) *Workspace {
	w := &Workspace{files: make(map[string]*File, len(files))}
	for _, f := range files {
		w.Add(f)
	}
	return w
}

// Add registers a file, replacing any file with the same path.
func (w *Workspace) Add(f *File) {
	w.files[path.Clean(f.Path)] = f
}

// File returns the file stored under p.
func (w *Workspace) File(p string) (*File, bool) {
	f, ok := w.files[path.Clean(p)]
	return f, ok
}

// Files returns all files ordered by path.
func (w *Workspace) Files() []*File {
	files := make([]*File, 0, len(w.files))
	for _, f := range w.files {
		files = append(files, f)
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files
}

// HasDir reports whether any file lives in dir or below it.
func (w *Workspace) HasDir(dir string) bool {
	dir = path.Clean(dir)
	for p := range w.files {
		if p == dir || strings.HasPrefix(p, dir+"/") || dir == "/" {
			return true
		}
	}
	return false
}

// InitFile returns the initialization file placed directly in dir.
func (w *Workspace) InitFile(dir string) (*File, bool) {
	dir = path.Clean(dir)
	for _, f := range w.Files() {
		if f.IsInit() && path.Clean(f.Dir()) == dir {
			return f, true
		}
	}
	return nil, false
}

// Ancestors returns f followed by every initialization file governing it,
// nearest first. An __init__ file is governed by the one in its parent
// directory, never by itself twice.
func (w *Workspace) Ancestors(f *File) []*File {
	chain := []*File{f}
	dir := path.Clean(f.Dir())
	if f.IsInit() {
		dir = path.Dir(dir)
	}
	for {
		if init, ok := w.InitFile(dir); ok && init != f {
			chain = append(chain, init)
		}
		parent := path.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return chain
}
