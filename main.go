package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"github.com/foobos/promotx/api"
	"github.com/foobos/promotx/sequence"
)

type app struct {
	Config     sequence.Config
	Client     mqtt.Client
	Controller *sequence.Controller
	Streamer   *sequence.Streamer
}

func newApp() *app {
	a := new(app)
	return a
}

func (a *app) handleOnConnect(client mqtt.Client) {
	log.Println("Connected")
	a.Controller.Subscribe()
}

func (a *app) run() {
	if token := a.Client.Connect(); token.Wait() && token.Error() != nil {
		panic(token.Error())
	}
	a.Streamer.Run()
}

func (a *app) readConfig(configPath string) {
	f, err := os.Open(configPath)
	if err != nil {
		panic(err)
	}

	decoder := yaml.NewDecoder(f)
	err = decoder.Decode(&a.Config)
	if err != nil {
		panic(err)
	}

	// Broker credentials can be kept out of the YAML file.
	if v := os.Getenv("MQTT_URL"); v != "" {
		a.Config.Mqtt.URL = v
	}
	if v := os.Getenv("MQTT_USERNAME"); v != "" {
		a.Config.Mqtt.Username = v
	}
	if v := os.Getenv("MQTT_PASSWORD"); v != "" {
		a.Config.Mqtt.Password = v
	}

	a.Config.ApplyDefaults()
}

func main() {
	mqtt.ERROR = log.New(os.Stdout, "", 0)

	// Parse command line parameters
	configPath := flag.String("config", "config.yaml", "YAML config file.")
	apiAddr := flag.String("api", ":3000", "Preview API address.")
	flag.Parse()

	godotenv.Load()

	// Read the config
	a := newApp()
	a.readConfig(*configPath)
	log.Printf("Config: %+v", a.Config)

	options := mqtt.NewClientOptions().
		AddBroker(a.Config.Mqtt.URL).
		SetClientID("promotx").
		SetUsername(a.Config.Mqtt.Username).
		SetPassword(a.Config.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetOnConnectHandler(a.handleOnConnect)
	client := mqtt.NewClient(options)

	a.Client = client
	a.Controller = sequence.NewController(a.Config, client)
	a.Streamer = sequence.NewStreamer(a.Config, client, a.Controller)

	preview := api.NewApi(a.Config, a.Streamer.Animation())
	go preview.Serve(*apiAddr)

	a.run()
}
