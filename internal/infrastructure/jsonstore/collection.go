// Package jsonstore implementa el Record Store: cada colección es un archivo
// JSON (<dataDir>/<nombre>.json) que se lee y reescribe completo. El ciclo
// read-modify-write se serializa con un mutex por colección y la escritura
// usa archivo temporal + rename para que los lectores nunca vean un archivo
// a medio escribir.
package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jhoicas/inventario-lite/internal/domain"
)

// Collection maneja una colección de registros T persistida como documento JSON.
type Collection[T any] struct {
	name string
	path string
	mu   sync.Mutex
	log  zerolog.Logger
}

// NewCollection crea la colección <dataDir>/<name>.json (crea dataDir si falta).
func NewCollection[T any](dataDir, name string, log zerolog.Logger) (*Collection[T], error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, storageErr("crear directorio de datos", err)
	}
	return &Collection[T]{
		name: name,
		path: filepath.Join(dataDir, name+".json"),
		log:  log.With().Str("collection", name).Logger(),
	}, nil
}

// Load devuelve los registros en orden de inserción. Archivo ausente o con
// contenido corrupto se trata como colección vacía; lo segundo se loguea
// porque implica descartar datos en el próximo save.
func (c *Collection[T]) Load() ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load()
}

// Save reemplaza la colección completa (last-write-wins).
func (c *Collection[T]) Save(items []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.save(items)
}

// Update ejecuta fn sobre la colección y persiste el resultado, todo bajo el
// lock de la colección. Si fn devuelve error no se escribe nada.
func (c *Collection[T]) Update(fn func(items []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	items, err := c.load()
	if err != nil {
		return err
	}
	items, err = fn(items)
	if err != nil {
		return err
	}
	return c.save(items)
}

func (c *Collection[T]) load() ([]T, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []T{}, nil
		}
		return nil, storageErr("leer "+c.name, err)
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		c.log.Warn().Err(err).Msg("contenido corrupto, se trata como colección vacía")
		return []T{}, nil
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (c *Collection[T]) save(items []T) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return storageErr("serializar "+c.name, err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(c.path), c.name+"-*.tmp")
	if err != nil {
		return storageErr("crear temporal para "+c.name, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return storageErr("escribir "+c.name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return storageErr("cerrar "+c.name, err)
	}
	if err := os.Rename(tmp.Name(), c.path); err != nil {
		os.Remove(tmp.Name())
		return storageErr("renombrar "+c.name, err)
	}
	return nil
}

func storageErr(op string, err error) error {
	return fmt.Errorf("jsonstore: %s (%v): %w", op, err, domain.ErrStorage)
}
