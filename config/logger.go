package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	"go.uber.org/zap"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"

	"github.com/Shane32/BookConverter/misc"
)

type LoggerConfig struct {
	Level       string `yaml:"level" validate:"required,oneof=none debug normal"`
	Destination string `yaml:"destination,omitempty" sanitize:"path_clean,assure_dir_exists_for_file" validate:"omitempty,filepath"`
	Mode        string `yaml:"mode,omitempty" validate:"omitempty,oneof=append overwrite"`
}

type LoggingConfig struct {
	FileLogger    LoggerConfig `yaml:"file"`
	ConsoleLogger LoggerConfig `yaml:"console"`
}

// Prepare returns our standard logger - configured zap logger for use by the
// program. Console output is split: info and below go to stdout, errors to
// stderr, so shell pipelines see diagnostics where they expect them.
func (conf *LoggingConfig) Prepare(rpt *Report) (*zap.Logger, error) {

	consoleEncoderFor := func(stream *os.File, filtered bool) zapcore.Encoder {
		ec := zap.NewDevelopmentEncoderConfig()
		ec.EncodeCaller = nil
		if EnableColorOutput(stream) {
			ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
			ec.TimeKey = zapcore.OmitKey
		} else {
			ec.EncodeLevel = zapcore.CapitalLevelEncoder
		}
		if filtered {
			// errors printed to console should not carry verbose chains
			return consoleEnc{zapcore.NewConsoleEncoder(ec)}
		}
		return zapcore.NewConsoleEncoder(ec)
	}

	highPriority := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= zapcore.ErrorLevel
	})

	consoleCoreLP, consoleCoreHP := zapcore.NewNopCore(), zapcore.NewNopCore()
	switch conf.ConsoleLogger.Level {
	case "normal", "debug":
		low := zapcore.InfoLevel
		if conf.ConsoleLogger.Level == "debug" {
			low = zapcore.DebugLevel
		}
		consoleCoreLP = zapcore.NewCore(consoleEncoderFor(os.Stdout, false), zapcore.Lock(os.Stdout),
			zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
				return low <= lvl && lvl < zapcore.ErrorLevel
			}))
		consoleCoreHP = zapcore.NewCore(consoleEncoderFor(os.Stderr, true), zapcore.Lock(os.Stderr), highPriority)
	}

	// File

	opener := func(fname, mode string) (*os.File, error) {
		flags := os.O_CREATE | os.O_WRONLY
		if mode == "append" {
			flags |= os.O_APPEND
		} else {
			flags |= os.O_TRUNC
		}
		return os.OpenFile(fname, flags, 0644)
	}

	levelRequested, modeRequested := conf.FileLogger.Level, conf.FileLogger.Mode
	if rpt != nil {
		// if report is requested always set maximum available logging level
		// for the file logger
		levelRequested, modeRequested = "debug", "overwrite"
	}

	var (
		fileCore = zapcore.NewNopCore()
		logLevel zap.AtomicLevel
		newName  string
	)
	switch levelRequested {
	case "debug":
		logLevel = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "normal":
		logLevel = zap.NewAtomicLevelAt(zap.InfoLevel)
	default:
		levelRequested = ""
	}

	if len(levelRequested) > 0 {

		// capture panic log if possible
		if ef, err := opener(filepath.Join(filepath.Dir(conf.FileLogger.Destination), misc.GetAppName()+"-panic.log"), modeRequested); err == nil {
			debug.SetCrashOutput(ef, debug.CrashOptions{})
			rpt.Store("panic.log", ef.Name())
			ef.Close()
		} else if ef, err := os.CreateTemp("", misc.GetAppName()+"-panic.*.log"); err == nil {
			debug.SetCrashOutput(ef, debug.CrashOptions{})
			rpt.Store("panic.log", ef.Name())
			ef.Close()
		}

		fileEncoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		if f, err := opener(conf.FileLogger.Destination, modeRequested); err == nil {
			fileCore = zapcore.NewCore(fileEncoder, zapcore.Lock(f), logLevel)
			rpt.Store("final.log", f.Name())
		} else if f, err = os.CreateTemp("", misc.GetAppName()+".*.log"); err == nil {
			newName = f.Name()
			fileCore = zapcore.NewCore(fileEncoder, zapcore.Lock(f), logLevel)
			rpt.Store("final.log", newName)
		} else {
			return nil, fmt.Errorf("unable to access file log destination (%s): %w", conf.FileLogger.Destination, err)
		}
	}

	core := zap.New(zapcore.NewTee(consoleCoreHP, consoleCoreLP, fileCore), zap.AddCaller())
	if len(newName) != 0 {
		// log was redirected - we need to report this
		core.Warn("Log file was redirected to new location", zap.String("location", newName))
	}
	return core.Named(misc.GetAppName()), nil
}

// When logging error to console - do not output verbose message.

type consoleEnc struct {
	zapcore.Encoder
}

func (c consoleEnc) Clone() zapcore.Encoder {
	return consoleEnc{c.Encoder.Clone()}
}

func (c consoleEnc) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	var newFields []zapcore.Field
	for _, f := range fields {
		if f.Type == zapcore.ErrorType {
			e := f.Interface.(error)
			f.Interface = errors.New(e.Error())
		}
		newFields = append(newFields, f)
	}
	return c.Encoder.EncodeEntry(ent, newFields)
}
