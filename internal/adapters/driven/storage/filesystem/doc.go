// Package filesystem writes output documents under a root directory.
//
// Writes are plain os.WriteFile calls; a file already holding the encoded
// bytes is not rewritten, so repeated runs leave mtimes alone.
package filesystem
