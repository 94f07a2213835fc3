package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"inav-panel/config"
	"inav-panel/database"
	"inav-panel/logger"
	"inav-panel/web"
	"inav-panel/web/service"

	"github.com/joho/godotenv"
	"github.com/op/go-logging"
	"github.com/spf13/cobra"
)

func runWebServer() {
	log.Printf("%v %v", config.GetName(), config.GetVersion())

	switch config.GetLogLevel() {
	case config.Debug:
		logger.InitLogger(logging.DEBUG)
	case config.Info:
		logger.InitLogger(logging.INFO)
	case config.Notice:
		logger.InitLogger(logging.NOTICE)
	case config.Warn:
		logger.InitLogger(logging.WARNING)
	case config.Error:
		logger.InitLogger(logging.ERROR)
	default:
		log.Fatal("unknown log level:", config.GetLogLevel())
	}

	err := database.InitDB(config.GetDatabaseConfig())
	if err != nil {
		log.Fatal(err)
	}

	server := web.NewServer()
	if err := server.Start(); err != nil {
		log.Println(err)
		return
	}

	sigCh := make(chan os.Signal, 1)
	// Trap shutdown signals
	signal.Notify(sigCh, syscall.SIGHUP, syscall.SIGTERM, syscall.SIGINT)
	for {
		sig := <-sigCh

		switch sig {
		case syscall.SIGHUP:
			logger.Info("received SIGHUP, restarting servers...")
			if err := server.Stop(); err != nil {
				logger.Warning("stop server err:", err)
			}
			server = web.NewServer()
			if err := server.Start(); err != nil {
				log.Println(err)
				return
			}
		default:
			if err := server.Stop(); err != nil {
				logger.Warning("stop server err:", err)
			}
			logger.CloseLogger()
			return
		}
	}
}

func showSettings() {
	settingService := service.SettingService{}
	port, err := settingService.GetPort()
	if err != nil {
		fmt.Println("get current port failed, error info:", err)
		return
	}
	listen, err := settingService.GetListen()
	if err != nil {
		fmt.Println("get current listen address failed, error info:", err)
		return
	}
	fmt.Println("current panel settings as follows:")
	fmt.Println("listen:", listen)
	fmt.Println("port:", port)
}

func resetSettings() {
	settingService := service.SettingService{}
	if err := settingService.ResetSettings(); err != nil {
		fmt.Println("reset setting failed:", err)
	} else {
		fmt.Println("reset setting success")
	}
}

func resetAdmin(username string, password string) {
	adminService := service.AdminService{}
	if err := adminService.UpdateFirstAdmin(username, password); err != nil {
		fmt.Println("reset admin credential failed:", err)
	} else {
		fmt.Println("reset admin credential success")
	}
}

func main() {
	_ = godotenv.Load()

	var (
		show     bool
		reset    bool
		username string
		password string
		port     int
	)

	rootCmd := &cobra.Command{
		Use:   config.GetName(),
		Short: "indoor navigation admin panel",
		Run: func(cmd *cobra.Command, args []string) {
			runWebServer()
		},
	}

	settingCmd := &cobra.Command{
		Use:   "setting",
		Short: "show or change panel settings",
		Run: func(cmd *cobra.Command, args []string) {
			if err := database.InitDB(config.GetDatabaseConfig()); err != nil {
				fmt.Println(err)
				return
			}
			defer database.CloseDB()

			settingService := service.SettingService{}
			if reset {
				resetSettings()
			}
			if port > 0 {
				if err := settingService.SetPort(port); err != nil {
					fmt.Println("set port failed:", err)
				} else {
					fmt.Println("set port", port, "success")
				}
			}
			if username != "" || password != "" {
				resetAdmin(username, password)
			}
			if show {
				showSettings()
			}
		},
	}
	settingCmd.Flags().BoolVar(&show, "show", false, "show current settings")
	settingCmd.Flags().BoolVar(&reset, "reset", false, "reset all settings to defaults")
	settingCmd.Flags().StringVar(&username, "username", "", "reset the first admin's username")
	settingCmd.Flags().StringVar(&password, "password", "", "reset the first admin's password")
	settingCmd.Flags().IntVar(&port, "port", 0, "set the web listen port")

	rootCmd.AddCommand(settingCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
