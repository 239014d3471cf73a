package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

// Audio modes.
const (
	AudioSpeaker = "speaker"
	AudioBell    = "bell"
	AudioOff     = "off"
)

// Duration is a time.Duration written as "90s" or "5m" in TOML.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// SSH configures the SSH host.
type SSH struct {
	Host        string   `toml:"host"`
	Port        string   `toml:"port"`
	HostKey     string   `toml:"host_key"`
	MaxSessions int      `toml:"max_sessions"`
	IdleTimeout Duration `toml:"idle_timeout"`
}

// Web configures the landing page server.
type Web struct {
	Host        string `toml:"host"`
	Port        string `toml:"port"`
	DisplayHost string `toml:"display_host"` // SSH host shown to visitors
}

// Settings holds deployment settings for all entry points.
type Settings struct {
	Audio string `toml:"audio"`
	SSH   SSH    `toml:"ssh"`
	Web   Web    `toml:"web"`
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		Audio: AudioSpeaker,
		SSH: SSH{
			Host:        "::",
			Port:        "2222",
			HostKey:     "/app/keys/host_key",
			MaxSessions: 64,
			IdleTimeout: Duration{5 * time.Minute},
		},
		Web: Web{
			Host:        "0.0.0.0",
			Port:        "8080",
			DisplayHost: "your-server.com",
		},
	}
}

// Load reads settings from the TOML file named by PONG_CONFIG (default
// pong.toml) on top of Defaults, then applies environment overrides.
// A missing file is not an error.
func Load() (Settings, error) {
	return LoadFile(GetEnv("PONG_CONFIG", "pong.toml"))
}

// LoadFile is Load with an explicit path.
func LoadFile(path string) (Settings, error) {
	s := Defaults()
	if path != "" {
		if _, err := toml.DecodeFile(path, &s); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return s, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	if err := s.applyEnv(); err != nil {
		return s, err
	}
	return s, s.validate()
}

func (s *Settings) applyEnv() error {
	s.SSH.Host = GetEnv("SSH_HOST", s.SSH.Host)
	s.SSH.Port = GetEnv("SSH_PORT", s.SSH.Port)
	s.SSH.HostKey = GetEnv("SSH_HOST_KEY", s.SSH.HostKey)
	s.Web.Host = GetEnv("WEB_HOST", s.Web.Host)
	s.Web.Port = GetEnv("WEB_PORT", s.Web.Port)
	s.Web.DisplayHost = GetEnv("SSH_DISPLAY_HOST", s.Web.DisplayHost)
	s.Audio = GetEnv("PONG_AUDIO", s.Audio)

	if v := GetEnv("PONG_IDLE_TIMEOUT", ""); v != "" {
		if err := s.SSH.IdleTimeout.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("PONG_IDLE_TIMEOUT: %w", err)
		}
	}
	if v := GetEnv("SSH_MAX_SESSIONS", ""); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SSH_MAX_SESSIONS: %w", err)
		}
		s.SSH.MaxSessions = n
	}
	return nil
}

func (s *Settings) validate() error {
	switch s.Audio {
	case AudioSpeaker, AudioBell, AudioOff:
	default:
		return fmt.Errorf("unknown audio mode %q", s.Audio)
	}
	if s.SSH.IdleTimeout.Duration < 0 {
		return fmt.Errorf("negative idle timeout %s", s.SSH.IdleTimeout)
	}
	return nil
}
