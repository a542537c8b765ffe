// Package fileutil은 여러 패키지가 함께 쓰는 파일 쓰기 도우미를 제공합니다.
package fileutil

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultMode는 새로 만드는 파일의 권한입니다.
const DefaultMode fs.FileMode = 0o644

// WriteAtomic은 같은 디렉토리의 임시 파일에 쓰고 fsync한 뒤 rename으로 교체합니다.
// 기존 파일이 있으면 그 권한을 유지하고, 없으면 DefaultMode를 씁니다.
// 실패하면 원본 파일은 그대로 남고 임시 파일은 삭제됩니다.
func WriteAtomic(path string, data []byte) error {
	mode := DefaultMode
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer func() {
		// rename 성공 시에는 이미 없는 파일
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}
