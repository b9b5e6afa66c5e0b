package handlers

import (
	"log"
	"net/http"
)

// respondWithError sends userMsg as a plain-text error and logs err under logMsg,
// or under userMsg when logMsg is empty
func respondWithError(w http.ResponseWriter, status int, userMsg, logMsg string, err error) {
	if err != nil {
		if logMsg == "" {
			logMsg = userMsg
		}
		log.Printf("%s: %v", logMsg, err)
	}

	http.Error(w, userMsg, status)
}
