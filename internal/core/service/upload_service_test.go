package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/theyard/fanpass/internal/core/domain"
)

type stubFileStore struct {
	name    string
	content []byte
	saveErr error
}

func (s *stubFileStore) Save(name string, r io.Reader) (string, error) {
	if s.saveErr != nil {
		return "", s.saveErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	s.name = name
	s.content = data
	return path.Join("/uploads", name), nil
}

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func TestUploadService_Store_PNG(t *testing.T) {
	store := &stubFileStore{}
	svc := NewUploadService(store, zerolog.Nop())

	payload := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0}, 600)...)

	url, err := svc.Store(context.Background(), "cover.png", int64(len(payload)), bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("Store returned error: %v", err)
	}
	if !strings.HasPrefix(url, "/uploads/") || !strings.HasSuffix(url, ".png") {
		t.Fatalf("unexpected public path: %s", url)
	}
	if strings.Contains(url, "cover") {
		t.Fatalf("stored name must not leak the original filename: %s", url)
	}
	if !bytes.Equal(store.content, payload) {
		t.Fatalf("stored bytes differ from the upload")
	}
}

func TestUploadService_Store_TooLarge(t *testing.T) {
	svc := NewUploadService(&stubFileStore{}, zerolog.Nop())

	_, err := svc.Store(context.Background(), "big.png", MaxUploadSize+1, bytes.NewReader(nil))
	if !errors.Is(err, domain.ErrUploadTooLarge) {
		t.Fatalf("expected ErrUploadTooLarge, got %v", err)
	}
}

func TestUploadService_Store_RejectsSniffedType(t *testing.T) {
	store := &stubFileStore{}
	svc := NewUploadService(store, zerolog.Nop())

	// The client-declared .png name does not matter; the bytes are text.
	payload := []byte("#!/bin/sh\necho nope\n")
	_, err := svc.Store(context.Background(), "script.png", int64(len(payload)), bytes.NewReader(payload))
	if !errors.Is(err, domain.ErrUnsupportedFileType) {
		t.Fatalf("expected ErrUnsupportedFileType, got %v", err)
	}
	if store.name != "" {
		t.Fatalf("rejected upload must not reach the store")
	}
}

func TestUploadService_Store_SmallFile(t *testing.T) {
	// Files shorter than the sniff window still work.
	store := &stubFileStore{}
	svc := NewUploadService(store, zerolog.Nop())

	gif := []byte("GIF89a" + strings.Repeat("\x00", 20))
	url, err := svc.Store(context.Background(), "dot.gif", int64(len(gif)), bytes.NewReader(gif))
	if err != nil {
		t.Fatalf("Store returned error: %v", err)
	}
	if !strings.HasSuffix(url, ".gif") {
		t.Fatalf("expected a .gif name, got %s", url)
	}
}

func TestUploadService_Store_SaveFailure(t *testing.T) {
	store := &stubFileStore{saveErr: errors.New("disk full")}
	svc := NewUploadService(store, zerolog.Nop())

	payload := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0}, 600)...)
	if _, err := svc.Store(context.Background(), "cover.png", int64(len(payload)), bytes.NewReader(payload)); err == nil {
		t.Fatalf("expected store failure to surface")
	}
}
