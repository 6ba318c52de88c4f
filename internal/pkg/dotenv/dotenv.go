package dotenv

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const defaultFile = ".env"

// Load читает переменные из файла, указанного флагом -env (по умолчанию .env),
// не перетирая уже заданные в окружении. Отсутствие файла не ошибка: loaded=false.
// Флаг -port перекрывает PORT.
func Load() (loaded bool, err error) {
	var (
		envFile  string
		portFlag string
	)
	flag.StringVar(&envFile, "env", defaultFile, "Path to .env file")
	flag.StringVar(&portFlag, "port", "", "Server port (overrides PORT environment variable)")
	flag.Parse()

	loaded, err = loadFile(envFile)
	if err != nil {
		return false, err
	}

	if portFlag != "" {
		if err := os.Setenv("PORT", portFlag); err != nil {
			return loaded, fmt.Errorf("failed to set PORT environment variable: %w", err)
		}
	}
	return loaded, nil
}

func loadFile(path string) (bool, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("stat %s: %w", path, err)
	}

	if err := godotenv.Load(path); err != nil {
		return false, fmt.Errorf("load %s: %w", path, err)
	}
	return true, nil
}
