// Package file stores multipart uploads on the local filesystem.
//
// Each request gets its own directory created by NewDir. Uploaded files are
// written there under their sanitized original names, so a handler sees
// "/tmp/upload-123/report.pdf" rather than a random temp name:
//
//	dir, err := file.NewDir(cfg.UploadDir)
//	if err != nil {
//		return err
//	}
//	defer dir.Remove()
//
//	ref, err := dir.Save(ctx, part.FileName(), part.Header.Get("Content-Type"), part, 10<<20)
//
// Save enforces the size limit while streaming and removes partial files on
// failure. Names that collide within one request get a numeric suffix.
package file
