package console

import (
	"errors"
	"fmt"
	"io"

	"lotto/models"

	log "github.com/sirupsen/logrus"
)

const genericErrorMessage = "[ERROR] 예기치 못한 오류가 발생했습니다."

// HandleError writes the user-facing message for err to w and logs the
// details. It returns the process exit code.
func HandleError(w io.Writer, err error) int {
	if err == nil {
		return 0
	}

	var validationErr *models.ValidationError
	if errors.As(err, &validationErr) {
		log.WithFields(log.Fields{
			"reason": validationErr.Reason,
			"error":  validationErr.Error(),
		}).Warn("Rejected invalid input")
		fmt.Fprintln(w, validationErr.UserMessage)
		return 1
	}

	log.WithFields(log.Fields{
		"error": err.Error(),
	}).Error("Unexpected error in lotto session")
	fmt.Fprintln(w, genericErrorMessage)
	return 1
}
