package initializers

import (
	"context"

	"interview-tools-backend/config"
	"interview-tools-backend/fiberlog"
	generationhandler "interview-tools-backend/lib/ai/generation"
	candidatehandler "interview-tools-backend/lib/candidate"
	xlsexport "interview-tools-backend/lib/export/xls"
	gpthandler "interview-tools-backend/lib/gpt"
	templatehandler "interview-tools-backend/lib/template"
	vacancyhandler "interview-tools-backend/lib/vacancy"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3(ctx)
	InitSmtp()
	xlsexport.NewHandler()
	gpthandler.NewHandler()
	vacancyhandler.NewHandler()
	templatehandler.NewHandler()
	candidatehandler.NewHandler()
	generationhandler.NewHandler(ctx)
}
