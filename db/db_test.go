package db

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
)

func TestMongoConfigDefaults(t *testing.T) {
	t.Setenv("MONGODB_URI", "")
	t.Setenv("MONGODB_DB", "")

	uri, name := mongoConfig()
	if uri != "mongodb://localhost:27017" {
		t.Errorf("default uri = %q", uri)
	}
	if name != "antojosdb" {
		t.Errorf("default db name = %q", name)
	}
}

// Values configured only through a .env file must reach the connection
// settings, which requires the file to be loaded before config is read.
func TestMongoConfigFromDotEnv(t *testing.T) {
	dir := t.TempDir()
	env := "MONGODB_URI=mongodb://db.internal:27017\nMONGODB_DB=tienda\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("MONGODB_URI", "")
	t.Setenv("MONGODB_DB", "")
	os.Unsetenv("MONGODB_URI")
	os.Unsetenv("MONGODB_DB")
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })

	if err := godotenv.Load(); err != nil {
		t.Fatal(err)
	}

	uri, name := mongoConfig()
	if uri != "mongodb://db.internal:27017" {
		t.Errorf("uri = %q, want the .env value", uri)
	}
	if name != "tienda" {
		t.Errorf("db name = %q, want the .env value", name)
	}
}
