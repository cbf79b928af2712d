package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/KoganTheDev/press-blinker/internal/blink"
	"github.com/KoganTheDev/press-blinker/internal/button"
	"github.com/KoganTheDev/press-blinker/internal/controller"
	"github.com/KoganTheDev/press-blinker/internal/led"
	log "github.com/sirupsen/logrus"
)

type colorFormatter struct {
	log.TextFormatter
}

func (f *colorFormatter) Format(entry *log.Entry) ([]byte, error) {
	var levelColor int
	switch entry.Level {
	case log.DebugLevel, log.TraceLevel:
		levelColor = 90 // dark grey
	case log.WarnLevel:
		levelColor = 33 // yellow
	case log.ErrorLevel, log.FatalLevel, log.PanicLevel:
		levelColor = 91 // bright red
	default:
		levelColor = 39 // default
	}
	return []byte(fmt.Sprintf("\x1b[%dm%s\x1b[0m\n", levelColor, entry.Message)), nil
}

func main() {
	log.SetFormatter(&colorFormatter{})

	if err := RootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func startController(configFile string) error {
	conf, err := readConfig(configFile)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	out, err := led.New(conf.Led.Pin)
	if err != nil {
		return fmt.Errorf("init LED: %w", err)
	}

	presses, err := button.Watch(conf.Button.Pin)
	if err != nil {
		return fmt.Errorf("init button: %w", err)
	}

	sched := blink.New(out)
	ctrl := controller.New(sched)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go ctrl.Run(ctx, presses)

	log.Info("System ready.")

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)
	<-signalChan

	sched.Stop()
	log.Info("Done...")
	return nil
}
