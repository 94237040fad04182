// Package main тестовый пакет для анализатора noexit
package main

import (
	"fmt"
	"log"
	"os"
)

func main() {
	fmt.Println("0.5")
	os.Exit(0) // want "direct call to os.Exit outside package fatal"
}

func check(err error) {
	if err != nil {
		log.Fatalf("entropy source unavailable: %v", err) // want "direct call to log.Fatalf outside package fatal"
	}
}

func withLogger(l *log.Logger) {
	l.Fatal("boom") // want "direct call to log.Fatal outside package fatal"
}

func notExit() {
	log.Println("this is fine")
}
