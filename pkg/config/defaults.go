package config

const (
	DefaultTemplate    = "Dockerfile.template"
	DefaultVersionFile = "VERSION"
)

// Default returns the built-in matrix used when no matrix.yaml exists:
// debian and alpine over the architectures their multiarch base images
// support.
func Default() *Config {
	return &Config{
		Repo:        "example/app",
		Template:    DefaultTemplate,
		VersionFile: DefaultVersionFile,
		OS: map[string]OSConfig{
			"debian": {
				Images: []ArchSpec{
					{Base: "debian:stable-slim", Arch: "amd64", AltArch: "amd64"},
					{Base: "multiarch/debian-debootstrap:armel-stable-slim", Arch: "armel", AltArch: "arm"},
					{Base: "multiarch/debian-debootstrap:armhf-stable-slim", Arch: "armhf", AltArch: "arm"},
					{Base: "multiarch/debian-debootstrap:arm64-stable-slim", Arch: "arm64", AltArch: "aarch64"},
				},
			},
			"alpine": {
				Images: []ArchSpec{
					{Base: "alpine:3.20", Arch: "amd64", AltArch: "amd64"},
					{Base: "multiarch/alpine:armhf-v3.20", Arch: "armhf", AltArch: "arm"},
					{Base: "multiarch/alpine:arm64-v3.20", Arch: "arm64", AltArch: "aarch64"},
				},
			},
		},
	}
}
