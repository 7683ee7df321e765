package dotenv

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

const defaultEnvFile = ".env"

// Load разбирает флаги командной строки и подгружает переменные из env-файла.
// Отсутствие .env по умолчанию не ошибка, явно переданный --env-file обязан существовать.
// Уже заданные переменные окружения не перезаписываются, --port перекрывает PORT.
// Возвращает true, если env-файл был прочитан.
func Load(args []string) (bool, error) {
	loaded, _, err := LoadArgs(args)
	return loaded, err
}

// LoadArgs как Load, дополнительно возвращает позиционные аргументы после флагов.
func LoadArgs(args []string) (bool, []string, error) {
	flags := pflag.NewFlagSet("delivery-service", pflag.ContinueOnError)
	envFile := flags.String("env-file", defaultEnvFile, "path to .env file")
	port := flags.StringP("port", "p", "", "server port (overrides PORT environment variable)")

	if err := flags.Parse(args); err != nil {
		return false, nil, fmt.Errorf("parse flags: %w", err)
	}

	loaded := true
	err := godotenv.Load(*envFile)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) || flags.Changed("env-file") {
			return false, nil, fmt.Errorf("load %s: %w", *envFile, err)
		}
		loaded = false
	}

	if *port != "" {
		err := os.Setenv("PORT", *port)
		if err != nil {
			return loaded, nil, fmt.Errorf("failed to set PORT environment variable: %w", err)
		}
	}
	return loaded, flags.Args(), nil
}
