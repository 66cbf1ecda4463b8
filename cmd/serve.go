// cmd/serve.go
package cmd

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

var serverPort int // For the --port flag

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the gallery locally and rebuilds it on changes",
	Long: `The serve command performs an initial gallery build, then starts a
local web server over the working directory so both the gallery page and
the demos themselves are browsable. It watches the apps directory for
changes and regenerates the gallery automatically.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log.Println("Performing initial build...")
		if err := runBuildProcess(appConfig); err != nil {
			log.Fatalf("Initial build failed: %v. Please fix issues and try again.", err)
			return err // Should be unreachable due to log.Fatalf
		}
		log.Println("Initial build successful.")

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			log.Fatalf("Failed to create file watcher: %v", err)
			return err
		}
		defer watcher.Close()

		// Goroutine for watching file changes
		go func() {
			// Simple debouncing: wait a short period after an event before rebuilding
			var buildTimer *time.Timer
			debounceDuration := 500 * time.Millisecond

			for {
				select {
				case event, ok := <-watcher.Events:
					if !ok {
						return // Channel closed
					}
					if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
						log.Printf("Change detected: %s (%s)", event.Name, event.Op.String())

						// New subdirectories under a watched path are not
						// watched automatically; add them as they appear.
						if event.Has(fsnotify.Create) && isDir(event.Name) {
							log.Printf("New directory created: %s. Adding to watcher.", event.Name)
							if err := watcher.Add(event.Name); err != nil {
								log.Printf("Error adding new directory %s to watcher: %v", event.Name, err)
							}
						}

						// Debounce rebuilding
						if buildTimer != nil {
							buildTimer.Stop()
						}
						buildTimer = time.AfterFunc(debounceDuration, func() {
							log.Println("Rebuilding gallery due to changes...")
							if err := runBuildProcess(appConfig); err != nil {
								log.Printf("Error during rebuild: %v", err)
							} else {
								log.Println("Gallery rebuilt successfully.")
							}
						})
					}
				case err, ok := <-watcher.Errors:
					if !ok {
						return // Channel closed
					}
					log.Printf("Watcher error: %v", err)
				}
			}
		}()

		// fsnotify watches specific paths; walk the apps tree and add each
		// directory individually.
		if _, statErr := os.Stat(appConfig.AppsDir); os.IsNotExist(statErr) {
			log.Printf("Directory '%s' not found, not watching.", appConfig.AppsDir)
		} else {
			log.Printf("Setting up watch for %s and its subdirectories...", appConfig.AppsDir)
			err = filepath.WalkDir(appConfig.AppsDir, func(path string, d os.DirEntry, err error) error {
				if err != nil {
					log.Printf("Error walking %s: %v", path, err)
					return nil
				}
				if d.IsDir() {
					if watchErr := watcher.Add(path); watchErr != nil {
						log.Printf("Failed to watch %s: %v", path, watchErr)
					}
				}
				return nil
			})
			if err != nil {
				log.Printf("Error during initial directory walk for watching %s: %v", appConfig.AppsDir, err)
			}
		}

		serverAddr := fmt.Sprintf(":%d", serverPort)
		log.Printf("Serving gallery on http://localhost%s", serverAddr)
		log.Println("Press Ctrl+C to stop the server.")

		// Serve the working directory: the gallery page sits at its root and
		// links to the demos at their relative paths.
		fs := http.FileServer(http.Dir("."))
		http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
			// Set headers to prevent caching during development
			w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
			w.Header().Set("Pragma", "no-cache")
			w.Header().Set("Expires", "0")
			fs.ServeHTTP(w, r)
		})

		if err := http.ListenAndServe(serverAddr, nil); err != nil {
			// Logged if the server fails to start (e.g., port already in use)
			log.Fatalf("Failed to start HTTP server: %v", err)
			return err // Should be unreachable
		}
		return nil // Should not be reached
	},
}

// Helper function to check if a path is a directory
func isDir(path string) bool {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return false
	}
	return fileInfo.IsDir()
}

func init() {
	serveCmd.Flags().IntVarP(&serverPort, "port", "p", 1313, "Port to serve the gallery on")
	rootCmd.AddCommand(serveCmd)
}
