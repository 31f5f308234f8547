// Package storage writes generated artifacts, such as QR code images, to a
// local directory or an S3 bucket.
//
// Both backends implement Storage:
//
//	st, err := storage.NewLocalStorage(".", "")
//	if err != nil {
//		return err
//	}
//	obj, err := st.Put(ctx, "auth_qr.png", png, storage.ContentTypePNG)
//
// New selects a backend from Config, which is populated from STORAGE_*
// environment variables:
//
//	cfg := config.MustLoad[storage.Config]()
//	st, err := storage.New(ctx, cfg)
//
// LocalStorage writes through a temporary file and an atomic rename and
// refuses paths that resolve outside its base directory. S3Storage maps SDK
// failures onto the package errors (ErrObjectNotFound, ErrAccessDenied,
// ErrBucketNotFound and so on) so callers can use errors.Is.
package storage
