// Package fs abstracts the file system operations used to write result
// files, so tests can inject write, sync, close and rename failures.
//
// Production code uses [Default]; tests wrap it in a [FaultyFS]:
//
//	ffs := fs.NewFaultyFS(nil)
//	ffs.AddRule("summary.json", fs.Fault{FailOnSync: true})
package fs
