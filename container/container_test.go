package container

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"filippo.io/age"
)

func TestRoundTripPlain(t *testing.T) {
	m := "Date Time Id Type Status\n2021/04/06 12:22:17 10042 Archive completed\n"

	buf := bytes.NewBuffer(nil)
	w, err := NewWriter(buf, nil, "jobs", 3)
	if err != nil {
		t.Errorf("cannot create writer: %v", err)
		return
	}

	_, err = w.Write([]byte(m))
	if err != nil {
		t.Errorf("cannot write payload: %v", err)
		return
	}

	err = w.Close()
	if err != nil {
		t.Errorf("cannot close writer: %v", err)
		return
	}

	r, err := NewReader(buf)
	if err != nil {
		t.Errorf("cannot create reader: %v", err)
		return
	}

	if r.Scope() != "jobs" {
		t.Errorf("scope mismatch; expected: jobs, got: %v", r.Scope())
		return
	}

	err = r.Unseal(nil)
	if err != nil {
		t.Errorf("cannot unseal reader: %v", err)
		return
	}

	m2, err := io.ReadAll(r)
	if err != nil {
		t.Errorf("cannot decompress: %v", err)
		return
	}

	err = r.Close()
	if err != nil {
		t.Error(err)
	}

	if string(m2) != m {
		t.Errorf("different payload; expected: %v, got: %v", m, string(m2))
	}
}

func TestRoundTripEncrypted(t *testing.T) {
	id, err := age.GenerateX25519Identity()
	if err != nil {
		t.Fatal(err)
	}

	m := "10042 completed 1617709337\n"

	buf := bytes.NewBuffer(nil)
	w, err := NewWriter(buf, []age.Recipient{id.Recipient()}, "jobs", 3)
	if err != nil {
		t.Errorf("cannot create writer: %v", err)
		return
	}

	for i := 0; i < 100; i++ {
		n, err := w.Write([]byte(m))
		if err != nil || n != len(m) {
			t.Errorf("cannot write payload: %v", err)
			return
		}
	}

	err = w.Close()
	if err != nil {
		t.Errorf("cannot close encryptor: %v", err)
		return
	}

	r, err := NewReader(buf)
	if err != nil {
		t.Errorf("cannot create reader: %v", err)
		return
	}

	err = r.Unseal([]age.Identity{id})
	if err != nil {
		t.Errorf("cannot unseal reader: %v", err)
		return
	}

	m2, err := io.ReadAll(r)
	if err != nil {
		t.Errorf("cannot decrypt: %v", err)
		return
	}

	err = r.Close()
	if err != nil {
		t.Error(err)
	}

	if string(m2) != strings.Repeat(m, 100) {
		t.Errorf("different payload; expected: %v, got: %v", m, string(m2))
	}
}

func TestKeyMismatch(t *testing.T) {
	id, err := age.GenerateX25519Identity()
	if err != nil {
		t.Fatal(err)
	}
	other, err := age.GenerateX25519Identity()
	if err != nil {
		t.Fatal(err)
	}

	encrypted := bytes.NewBuffer(nil)
	w, err := NewWriter(encrypted, []age.Recipient{id.Recipient()}, "jobs", 3)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte("payload")); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	encryptedData := encrypted.Bytes()

	plain := bytes.NewBuffer(nil)
	w, err = NewWriter(plain, nil, "jobs", 3)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte("payload")); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	// Wrong private key
	r, err := NewReader(bytes.NewReader(encryptedData))
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Unseal([]age.Identity{other}); err == nil {
		t.Error("expected an error for a wrong private key")
	}

	// Encrypted bundle, no key given
	r, err = NewReader(bytes.NewReader(encryptedData))
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Unseal(nil); err == nil {
		t.Error("expected an error for a missing private key")
	}

	// Plaintext bundle, key given
	r, err = NewReader(bytes.NewReader(plain.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Unseal([]age.Identity{id}); err == nil {
		t.Error("expected an error for a key given on a plaintext bundle")
	}
}

func TestBadMagic(t *testing.T) {
	_, err := NewReader(strings.NewReader("PK\x03\x04 this is not a bundle, padding padding padding"))
	if !errors.Is(err, ErrInvalidMagicHeader) {
		t.Errorf("expected ErrInvalidMagicHeader, got %v", err)
	}
}

func TestTamperedHeader(t *testing.T) {
	id, err := age.GenerateX25519Identity()
	if err != nil {
		t.Fatal(err)
	}

	buf := bytes.NewBuffer(nil)
	w, err := NewWriter(buf, []age.Recipient{id.Recipient()}, "jobs", 3)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte("payload")); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	data := buf.Bytes()
	i := bytes.Index(data, []byte("scope=jobs"))
	if i < 0 {
		t.Fatal("header line not found")
	}
	data[i+len("scope=")] = 'x'

	r, err := NewReader(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Unseal([]age.Identity{id}); !errors.Is(err, ErrInvalidHeaderHash) {
		t.Errorf("expected ErrInvalidHeaderHash, got %v", err)
	}
}
