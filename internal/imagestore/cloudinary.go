package imagestore

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// Cloudinary uploads product images and returns their public URLs. The
// rest of the system only ever sees the returned URL, never file bytes.
type Cloudinary struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// NewCloudinary builds an uploader from a CLOUDINARY_URL-style DSN.
func NewCloudinary(cloudinaryURL, folder string) (*Cloudinary, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("init cloudinary: %w", err)
	}
	return &Cloudinary{cld: cld, folder: folder}, nil
}

// Upload pushes the image and returns its secure URL. The public id is
// derived from the file name plus a random suffix so repeat uploads of
// the same file never collide.
func (c *Cloudinary) Upload(ctx context.Context, name string, r io.Reader) (string, error) {
	publicID := publicIDFor(name)
	res, err := c.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		Folder:   c.folder,
		PublicID: publicID,
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", name, err)
	}
	if res.Error.Message != "" {
		return "", fmt.Errorf("upload %s: %s", name, res.Error.Message)
	}
	return res.SecureURL, nil
}

func publicIDFor(name string) string {
	base := strings.TrimSuffix(path.Base(name), path.Ext(name))
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '-'
	}, base)
	if base == "" {
		base = "image"
	}
	return base + "-" + uuid.NewString()
}
