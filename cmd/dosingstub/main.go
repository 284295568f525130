// Command dosingstub simulates the external dose calculation service: it
// accepts calculation requests, responds immediately, and after a short delay
// pushes a computed dose back to the order engine with the shared token.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

const calcDelay = 2 * time.Second

type calcRequest struct {
	MedicineID string `json:"medicine_id"`
}

type doseValue struct {
	Value float64 `json:"value"`
}

func main() {
	port := goDotEnvVariable("DOSING_HTTP_PORT")
	backendURL := goDotEnvVariable("BACKEND_URL")
	accessToken := goDotEnvVariable("DOSING_ACCESS_TOKEN")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	client := &http.Client{Timeout: 3 * time.Second}

	e := echo.New()
	e.HideBanner = true

	e.POST("/calc_dose", func(ctx echo.Context) error {
		var req calcRequest
		if err := ctx.Bind(&req); err != nil || req.MedicineID == "" {
			return ctx.NoContent(http.StatusBadRequest)
		}

		// Answer first, deliver the result later: the backend treats the
		// calculation as fire-and-forget.
		go func() {
			time.Sleep(calcDelay)
			if err := pushDose(client, backendURL, accessToken, req.MedicineID); err != nil {
				logger.Warn("failed to deliver dose", "medicine_id", req.MedicineID, "error", err)
				return
			}
			logger.Info("dose delivered", "medicine_id", req.MedicineID)
		}()

		return ctx.NoContent(http.StatusOK)
	})

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}

func pushDose(client *http.Client, backendURL string, accessToken string, medicineID string) error {
	dose := doseValue{Value: float64(rand.Intn(90)+10) / 10}
	body, err := json.Marshal(dose)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/api/medicines/%s/dose", backendURL, medicineID)
	req, err := http.NewRequest(http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("backend answered %s", resp.Status)
	}
	return nil
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}
