// Package checksum computes SHA256 digests of version file content.
//
// Digests are recorded in bump results so automation can confirm which
// bytes were replaced:
//
//	before, _ := checksum.FileDigest(ctx, "version.txt")
//	// ... bump ...
//	after, _ := checksum.FileDigest(ctx, "version.txt")
package checksum
