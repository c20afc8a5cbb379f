// internal/workers/communication/send-owner-questions/handler.go
package sendownerquestions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"sitegen-workers/internal/common/logger"
	"sitegen-workers/internal/common/validation"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	sestypes "github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	snstypes "github.com/aws/aws-sdk-go-v2/service/sns/types"
	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "send-owner-questions"
)

var (
	ErrNotificationSendFailed = errors.New("NOTIFICATION_SEND_FAILED")
	ErrInvalidRecipient       = errors.New("INVALID_RECIPIENT")
)

type emailSender interface {
	SendEmail(ctx context.Context, input *ses.SendEmailInput) (*ses.SendEmailOutput, error)
}

type smsSender interface {
	Publish(ctx context.Context, input *sns.PublishInput) (*sns.PublishOutput, error)
}

type Handler struct {
	config *Config
	email  emailSender
	sms    smsSender
	logger logger.Logger
}

func NewHandler(config *Config, email emailSender, sms smsSender, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		email:  email,
		sms:    sms,
		logger: log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		h.failJob(client, job, "PARSE_ERROR", fmt.Sprintf("parse input: %v", err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx, &input)
	if err != nil {
		errorCode := "NOTIFICATION_SEND_FAILED"
		if errors.Is(err, ErrInvalidRecipient) {
			errorCode = "INVALID_RECIPIENT"
		}
		h.failJob(client, job, errorCode, err.Error())
		return
	}

	h.completeJob(client, job, output)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	if len(input.Questions) == 0 {
		h.logger.Info("no questions to send, skipping notification", map[string]interface{}{
			"tenantId":   input.TenantID,
			"sitePlanId": input.SitePlanID,
		})
		return &Output{}, nil
	}

	output := &Output{}

	if h.config.EmailEnabled {
		if !validation.ValidateEmail(input.Email) {
			return nil, fmt.Errorf("%w: invalid email %q", ErrInvalidRecipient, input.Email)
		}
		if err := h.sendEmail(ctx, input); err != nil {
			return nil, fmt.Errorf("%w: email: %v", ErrNotificationSendFailed, err)
		}
		output.EmailSent = true
	}

	if h.config.SMSEnabled && input.Phone != "" {
		if !validation.ValidatePhone(input.Phone) {
			return nil, fmt.Errorf("%w: invalid phone %q", ErrInvalidRecipient, input.Phone)
		}
		if err := h.sendSMS(ctx, input); err != nil {
			// SMS is best effort once email went out.
			h.logger.Warn("sms delivery failed", map[string]interface{}{
				"tenantId": input.TenantID,
				"error":    err,
			})
		} else {
			output.SMSSent = true
		}
	}

	h.logger.Info("owner questions sent", map[string]interface{}{
		"tenantId":      input.TenantID,
		"sitePlanId":    input.SitePlanID,
		"questionCount": len(input.Questions),
		"emailSent":     output.EmailSent,
		"smsSent":       output.SMSSent,
	})

	return output, nil
}

func (h *Handler) sendEmail(ctx context.Context, input *Input) error {
	subject := fmt.Sprintf("A few questions to finish your %s website", displayName(input))
	body := h.buildEmailBody(input)

	_, err := h.email.SendEmail(ctx, &ses.SendEmailInput{
		Source: aws.String(h.config.FromEmail),
		Destination: &sestypes.Destination{
			ToAddresses: []string{input.Email},
		},
		Message: &sestypes.Message{
			Subject: &sestypes.Content{Data: aws.String(subject)},
			Body: &sestypes.Body{
				Text: &sestypes.Content{Data: aws.String(body)},
			},
		},
	})
	return err
}

func (h *Handler) buildEmailBody(input *Input) string {
	var b strings.Builder

	greeting := "Hi"
	if input.OwnerName != "" {
		greeting = "Hi " + input.OwnerName
	}
	fmt.Fprintf(&b, "%s,\n\n", greeting)
	fmt.Fprintf(&b, "Your website draft for %s is almost ready. Answering the questions below will make it noticeably better:\n\n", displayName(input))

	for i, q := range input.Questions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q.Prompt)
		if len(q.Options) > 0 {
			labels := make([]string, 0, len(q.Options))
			for _, opt := range q.Options {
				labels = append(labels, opt.Label)
			}
			fmt.Fprintf(&b, "   Suggestions: %s\n", strings.Join(labels, ", "))
		}
	}

	b.WriteString("\nReply through your dashboard and we will fold the answers into your site.\n")
	return b.String()
}

func (h *Handler) sendSMS(ctx context.Context, input *Input) error {
	message := fmt.Sprintf("%s: %d quick questions are waiting in your dashboard to finish your website.",
		displayName(input), len(input.Questions))

	publishInput := &sns.PublishInput{
		PhoneNumber: aws.String(input.Phone),
		Message:     aws.String(message),
	}
	if h.config.SMSSenderID != "" {
		publishInput.MessageAttributes = map[string]snstypes.MessageAttributeValue{
			"AWS.SNS.SMS.SenderID": {
				DataType:    aws.String("String"),
				StringValue: aws.String(h.config.SMSSenderID),
			},
		}
	}

	_, err := h.sms.Publish(ctx, publishInput)
	return err
}

func displayName(input *Input) string {
	if input.BusinessName != "" {
		return input.BusinessName
	}
	return "your business"
}

func (h *Handler) completeJob(client worker.JobClient, job entities.Job, output *Output) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{
			"error": err,
		})
		return
	}
	_, err = cmd.Send(context.Background())
	if err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{
			"error": err,
		})
	}
}

func (h *Handler) failJob(client worker.JobClient, job entities.Job, errorCode, errorMessage string) {
	h.logger.Error("job failed", map[string]interface{}{
		"jobKey":       job.Key,
		"errorCode":    errorCode,
		"errorMessage": errorMessage,
	})

	_, err := client.NewThrowErrorCommand().
		JobKey(job.Key).
		ErrorCode(errorCode).
		ErrorMessage(errorMessage).
		Send(context.Background())
	if err != nil {
		h.logger.Error("failed to throw error", map[string]interface{}{
			"error": err,
		})
	}
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
