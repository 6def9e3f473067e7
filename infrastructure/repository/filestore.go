package repository

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	jsoniter "github.com/json-iterator/go"
)

const (
	pagesDir = "pages"
	syncDir  = "sync"
	fileExt  = ".json"
	tmpExt   = ".tmp"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// FileStore é a raiz em disco da réplica local. Os repositórios de anúncios e de
// status compartilham o mesmo diretório e o mesmo controle de locks por chave.
type FileStore struct {
	dataDir string
	locks   *keyedMutex
}

func NewFileStore(dataDir string) *FileStore {
	if dataDir == "" {
		dataDir = "data"
	}
	return &FileStore{
		dataDir: dataDir,
		locks:   newKeyedMutex(),
	}
}

func (s *FileStore) DataDir() string {
	return s.dataDir
}

func (s *FileStore) pageDir(pageID string) string {
	return filepath.Join(s.dataDir, pagesDir, pageID)
}

func (s *FileStore) adPath(pageID, adID string) string {
	return filepath.Join(s.pageDir(pageID), adID+fileExt)
}

func (s *FileStore) statusPath(pageID string) string {
	return filepath.Join(s.dataDir, syncDir, pageID+fileExt)
}

// ValidKey informa se um page_id ou id pode ser usado como nome de arquivo
// dentro do diretório de dados
func ValidKey(key string) bool {
	if key == "" || key == "." || key == ".." {
		return false
	}
	return !strings.ContainsAny(key, "/\\\x00")
}

// writeFileAtomic grava o conteúdo em um arquivo temporário e o renomeia sobre o destino
func writeFileAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	// nome único por escrita: outro processo pode gravar no mesmo diretório
	file, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*"+tmpExt)
	if err != nil {
		return err
	}
	tmp := file.Name()

	if _, err := file.Write(data); err != nil {
		file.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := file.Chmod(0o644); err != nil {
		file.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := file.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}

	return nil
}

// keyedMutex serializa operações sobre a mesma chave sem bloquear chaves diferentes
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	mu   sync.Mutex
	refs int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*keyLock)}
}

// Lock adquire o lock da chave e retorna a função de liberação
func (k *keyedMutex) Lock(key string) func() {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &keyLock{}
		k.locks[key] = l
	}
	l.refs++
	k.mu.Unlock()

	l.mu.Lock()

	return func() {
		l.mu.Unlock()

		k.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}
