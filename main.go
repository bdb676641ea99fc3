package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"fyyur/cmd"
)

func main() {
	key := os.Getenv("ENV_CHEK")
	if key == "" {
		fmt.Println("Подключение к .env")
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			log.Fatal("Ошибка получения .env: ", err)
		}
	}

	cmd.Execute()
}
