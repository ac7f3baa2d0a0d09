package prefabs

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func useDir(t *testing.T, dir string) {
	t.Helper()
	prev := Dir
	Dir = dir
	t.Cleanup(func() { Dir = prev })
}

func TestLoadEmbedded(t *testing.T) {
	useDir(t, t.TempDir())

	scene, err := LoadSceneSpec(SceneFile)
	if err != nil {
		t.Fatalf("LoadSceneSpec: %v", err)
	}
	if scene.Layout == nil || scene.Layout.Count != 4 {
		t.Fatalf("expected embedded layout of 4, got %+v", scene.Layout)
	}

	tuning, err := LoadTuningSpec("prefabs/" + TuningFile)
	if err != nil {
		t.Fatalf("LoadTuningSpec: %v", err)
	}
	if tuning.Damping == nil || *tuning.Damping != 0.78 {
		t.Fatalf("unexpected damping %v", tuning.Damping)
	}
}

func TestLoadPrefersDisk(t *testing.T) {
	dir := t.TempDir()
	useDir(t, dir)
	if err := os.WriteFile(filepath.Join(dir, TuningFile), []byte("damping: 0.5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	spec, err := LoadTuningSpec(TuningFile)
	if err != nil {
		t.Fatalf("LoadTuningSpec: %v", err)
	}
	if spec.Damping == nil || *spec.Damping != 0.5 {
		t.Fatalf("disk override ignored: %v", spec.Damping)
	}
	if spec.Gravity != nil {
		t.Fatal("override should not merge with the embedded copy")
	}
	scene, err := LoadSceneSpec(SceneFile)
	if err != nil || scene.Layout == nil {
		t.Fatalf("files without an override should come from the embedded copy: %+v %v", scene, err)
	}
}

func TestLoadSpecErrors(t *testing.T) {
	dir := t.TempDir()
	useDir(t, dir)
	if _, err := LoadSpec[SceneSpec]("missing.yaml"); err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if err := os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("player: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSpec[SceneSpec]("broken.yaml"); err == nil {
		t.Fatal("expected an error for malformed yaml")
	}
}

func TestYAMLColor(t *testing.T) {
	cases := []struct {
		in      string
		want    color.Color
		wantErr bool
	}{
		{in: `"#102030"`, want: color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}},
		{in: `"10203040"`, want: color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}},
		{in: `"#123"`, wantErr: true},
		{in: `"#zzzzzz"`, wantErr: true},
		{in: `[1, 2]`, wantErr: true},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			var got YAMLColor
			err := yaml.Unmarshal([]byte(c.in), &got)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got.Color)
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got.Color != c.want {
				t.Fatalf("expected %v, got %v", c.want, got.Color)
			}
		})
	}

	var missing *YAMLColor
	if missing.Or(color.White) != color.White {
		t.Fatal("nil color should fall back")
	}
}
