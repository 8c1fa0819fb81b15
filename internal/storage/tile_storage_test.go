package storage

import (
	"bytes"
	"errors"
	"os"
	"testing"
	"time"
)

func setupTestStorage(t *testing.T, ttl time.Duration) (*TileStore, string) {
	// Создаем временную директорию для тестов
	tempDir, err := os.MkdirTemp("", "tile-storage-test")
	if err != nil {
		t.Fatalf("Не удалось создать временную директорию: %v", err)
	}

	storage, err := NewTileStore(tempDir, ttl)
	if err != nil {
		os.RemoveAll(tempDir)
		t.Fatalf("Не удалось создать хранилище: %v", err)
	}

	return storage, tempDir
}

func cleanupTestStorage(storage *TileStore, tempDir string) {
	if storage != nil {
		storage.Close()
	}
	if tempDir != "" {
		os.RemoveAll(tempDir)
	}
}

func TestSaveAndLoadTile(t *testing.T) {
	storage, tempDir := setupTestStorage(t, 0)
	defer cleanupTestStorage(storage, tempDir)

	payload := []byte{1, 2, 3, 4, 5}
	if err := storage.Save("tile:abc:simplex2:0:0:64:0.01:0:0:0", payload); err != nil {
		t.Fatalf("Ошибка сохранения тайла: %v", err)
	}

	got, found, err := storage.Load("tile:abc:simplex2:0:0:64:0.01:0:0:0")
	if err != nil {
		t.Fatalf("Ошибка загрузки тайла: %v", err)
	}
	if !found {
		t.Fatal("Тайл не найден после сохранения")
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("Неверные данные тайла: %v, ожидалось %v", got, payload)
	}

	// Изменение возвращённого среза не должно портить базу
	got[0] = 99
	again, _, _ := storage.Load("tile:abc:simplex2:0:0:64:0.01:0:0:0")
	if again[0] != 1 {
		t.Errorf("Загруженные данные разделяют память с базой")
	}
}

func TestLoadMissingTile(t *testing.T) {
	storage, tempDir := setupTestStorage(t, 0)
	defer cleanupTestStorage(storage, tempDir)

	got, found, err := storage.Load("tile:missing")
	if err != nil {
		t.Fatalf("Отсутствующий ключ не должен быть ошибкой: %v", err)
	}
	if found || got != nil {
		t.Errorf("Ожидался промах, получено found=%v data=%v", found, got)
	}
}

func TestCountDeleteAndPrefix(t *testing.T) {
	storage, tempDir := setupTestStorage(t, 0)
	defer cleanupTestStorage(storage, tempDir)

	keys := []string{"tile:aaa:simplex2:0:0", "tile:aaa:simplex2:0:1", "tile:bbb:perlin2:0:0"}
	for _, k := range keys {
		if err := storage.Save(k, []byte(k)); err != nil {
			t.Fatalf("Ошибка сохранения %s: %v", k, err)
		}
	}

	n, err := storage.Count("tile:")
	if err != nil || n != 3 {
		t.Fatalf("Count(tile:) = %d, %v; ожидалось 3", n, err)
	}
	n, _ = storage.Count("tile:aaa:")
	if n != 2 {
		t.Errorf("Count(tile:aaa:) = %d, ожидалось 2", n)
	}

	if err := storage.Delete("tile:bbb:perlin2:0:0"); err != nil {
		t.Fatalf("Ошибка удаления: %v", err)
	}
	if _, found, _ := storage.Load("tile:bbb:perlin2:0:0"); found {
		t.Errorf("Тайл найден после удаления")
	}

	if err := storage.DeletePrefix("tile:aaa:"); err != nil {
		t.Fatalf("Ошибка удаления по префиксу: %v", err)
	}
	n, _ = storage.Count("tile:")
	if n != 0 {
		t.Errorf("После удаления по префиксу осталось %d тайлов", n)
	}
}

func TestReopenKeepsTiles(t *testing.T) {
	storage, tempDir := setupTestStorage(t, time.Hour)
	defer os.RemoveAll(tempDir)

	if err := storage.Save("tile:persist", []byte("data")); err != nil {
		t.Fatalf("Ошибка сохранения: %v", err)
	}
	if err := storage.Close(); err != nil {
		t.Fatalf("Ошибка закрытия: %v", err)
	}

	reopened, err := NewTileStore(tempDir, time.Hour)
	if err != nil {
		t.Fatalf("Не удалось переоткрыть хранилище: %v", err)
	}
	defer reopened.Close()

	got, found, err := reopened.Load("tile:persist")
	if err != nil || !found || string(got) != "data" {
		t.Errorf("После переоткрытия: found=%v data=%q err=%v", found, got, err)
	}
}

func TestClosedStorage(t *testing.T) {
	storage, tempDir := setupTestStorage(t, 0)
	defer os.RemoveAll(tempDir)

	if err := storage.Close(); err != nil {
		t.Fatalf("Ошибка закрытия: %v", err)
	}
	if err := storage.Close(); err != nil {
		t.Errorf("Повторное закрытие должно быть безопасным: %v", err)
	}

	if err := storage.Save("k", nil); !errors.Is(err, ErrNotReady) {
		t.Errorf("Save после закрытия: %v, ожидалось ErrNotReady", err)
	}
	if _, _, err := storage.Load("k"); !errors.Is(err, ErrNotReady) {
		t.Errorf("Load после закрытия: %v, ожидалось ErrNotReady", err)
	}
}

func TestSaveBatch(t *testing.T) {
	storage, tempDir := setupTestStorage(t, time.Hour)
	defer cleanupTestStorage(storage, tempDir)

	items := map[string][]byte{
		"tile:a:1": {1},
		"tile:a:2": {2},
		"tile:b:1": {3},
	}
	if err := storage.SaveBatch(items); err != nil {
		t.Fatalf("Не удалось сохранить пачку: %v", err)
	}

	for key, want := range items {
		got, found, err := storage.Load(key)
		if err != nil || !found {
			t.Fatalf("Тайл %s не найден: %v", key, err)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("Тайл %s: ожидалось %v, получено %v", key, want, got)
		}
	}

	n, err := storage.Count("tile:a:")
	if err != nil {
		t.Fatalf("Не удалось посчитать тайлы: %v", err)
	}
	if n != 2 {
		t.Errorf("Ожидалось 2 тайла с префиксом, получено %d", n)
	}
}
