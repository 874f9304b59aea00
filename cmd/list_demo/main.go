package main

import (
	"flag"
	"fmt"
	"math/rand"

	nested "github.com/antonfisher/nested-logrus-formatter"
	jsoniter "github.com/json-iterator/go"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
	"go.elastic.co/ecslogrus"

	"github.com/lueurxax/singlell"
)

var version = "dev"

const pkgKey = "pkg"

type config struct {
	LoggerLevel logrus.Level `envconfig:"LOG_LEVEL" default:"info"`
	LogToEcs    bool         `envconfig:"LOG_TO_ECS" default:"false"`
	Elements    int          `envconfig:"ELEMENTS" default:"10"`
	Seed        int64        `envconfig:"SEED" default:"1"`
}

func main() {
	printVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *printVersion {
		fmt.Println(version)
		return
	}

	// init main config
	cfg := new(config)
	if err := envconfig.Process("", cfg); err != nil {
		panic(err)
	}

	// init logger
	logrusLogger := logrus.New()
	logrusLogger.SetLevel(cfg.LoggerLevel)
	logrusLogger.SetFormatter(&nested.Formatter{
		FieldsOrder:     []string{pkgKey},
		TimestampFormat: "01-02|15:04:05",
	})

	if cfg.LogToEcs {
		logrusLogger.SetFormatter(&ecslogrus.Formatter{})
	}

	logger := logrusLogger.WithField(pkgKey, "list_demo")

	rnd := rand.New(rand.NewSource(cfg.Seed))

	list := singlell.New[int]()
	for i := 0; i < cfg.Elements; i++ {
		list.Push(rnd.Intn(100))
	}
	logger.WithField("len", list.Len()).Info("pushed elements")

	if !list.IsEmpty() {
		list.Insert(0, -1)
		logger.WithField("len", list.Len()).Debug("inserted after head")

		removed := list.Remove(rnd.Intn(list.Len()))
		logger.WithField("removed", removed).WithField("len", list.Len()).Info("removed by index")
	}

	drained := make([]int, 0, list.Len())
	for {
		v, ok := list.Pop()
		if !ok {
			break
		}
		drained = append(drained, v)
	}

	data, err := jsoniter.MarshalToString(drained)
	if err != nil {
		panic(err)
	}

	fmt.Println(data)
}
