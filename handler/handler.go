package handler

import (
	"github.com/sirupsen/logrus"
	"pptxgen/logging"
)

var log *logrus.Logger

func init() {
	log = logging.GetLogger()
}
