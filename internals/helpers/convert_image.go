package helper

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	MaxUploadSize  = 5 * 1024 * 1024
	AvatarSize     = 256
	avatarQuality  = 80
	avatarURLStart = "/uploads"
)

var unsafeFilename = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func sanitizeFilename(filename string) string {
	return unsafeFilename.ReplaceAllString(filename, "_")
}

func GenerateUniqueFilename(folder, originalFilename string) string {
	timestamp := time.Now().Format("20060102")
	base := strings.TrimSuffix(sanitizeFilename(filepath.Base(originalFilename)), filepath.Ext(originalFilename))
	return fmt.Sprintf("%s/%s-%s-%s.webp", folder, timestamp, uuid.New().String(), base)
}

// ConvertToWebP decodes jpeg/png/webp, fits it into a size×size box and re-encodes as webp.
func ConvertToWebP(r io.Reader, size int) ([]byte, error) {
	all, err := io.ReadAll(io.LimitReader(r, MaxUploadSize+1))
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	if int64(len(all)) > MaxUploadSize {
		return nil, fmt.Errorf("image exceeds %d bytes", MaxUploadSize)
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("empty file")
	}

	var img image.Image
	if img, _, err = image.Decode(bytes.NewReader(all)); err != nil {
		if img, err = webp.Decode(bytes.NewReader(all)); err != nil {
			return nil, fmt.Errorf("unsupported image: %w", err)
		}
	}

	if size > 0 {
		img = imaging.Fit(img, size, size, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Quality: avatarQuality}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

// SaveAvatar converts the upload and stores it under uploadDir/folder.
// The returned path is the public URL served from /uploads.
func SaveAvatar(uploadDir, folder string, fh *multipart.FileHeader) (string, error) {
	if fh.Size > MaxUploadSize {
		return "", fmt.Errorf("image exceeds %d bytes", MaxUploadSize)
	}
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	data, err := ConvertToWebP(src, AvatarSize)
	if err != nil {
		return "", err
	}

	name := GenerateUniqueFilename(folder, fh.Filename)
	dst := filepath.Join(uploadDir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return "", fmt.Errorf("write avatar: %w", err)
	}
	return avatarURLStart + "/" + name, nil
}
