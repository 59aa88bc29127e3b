// Package filesystem provides the filesystem abstraction used by
// home-symlink.
//
// FS is backed by afero. Symlink operations go through afero's optional
// Linker, LinkReader and Lstater interfaces, so they work on the OS
// filesystem and fail cleanly on filesystems without symlink support.
package filesystem
