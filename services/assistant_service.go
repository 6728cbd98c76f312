package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"lab-dashboard-backend/models"
	"lab-dashboard-backend/utils"
)

const defaultReply = "I'm here to help with lab test orders, tracking, and results. How can I assist you today?"

// AssistantService produces rule-based chat replies. Every reply carries
// optional action metadata the dashboard uses to open the matching view.
type AssistantService struct {
	store      Repository
	classifier *utils.IntentClassifier
	logger     zerolog.Logger
}

func NewAssistantService(s Repository, logger zerolog.Logger) *AssistantService {
	return &AssistantService{
		store:      s,
		classifier: utils.NewIntentClassifier(s.PatientNames()),
		logger:     logger,
	}
}

// Respond classifies the message and builds the reply for its intent.
func (s *AssistantService) Respond(text string) *models.ChatResponse {
	intent := s.classifier.Classify(text)
	s.logger.Debug().Str("intent", intent).Msg("classified chat message")

	var content string
	var meta *models.ActionMetadata

	switch intent {
	case utils.IntentTrackOrder:
		content, meta = s.handleTracking(text)
	case utils.IntentCreateOrder:
		content, meta = s.handleCreation(text)
	case utils.IntentViewOrder:
		content, meta = s.handleView(text)
	case utils.IntentFilterByPatient:
		content, meta = s.handlePatient(text)
	default:
		content, meta = s.handleGeneral(text)
	}

	return &models.ChatResponse{
		ID:       "assistant-" + uuid.NewString(),
		Role:     "assistant",
		Content:  content,
		Metadata: meta,
	}
}

func (s *AssistantService) handleTracking(text string) (string, *models.ActionMetadata) {
	if orderID := utils.ExtractOrderID(text); orderID != "" {
		order, ok := s.store.GetOrderByID(orderID)
		if !ok {
			// Metadata still carries the ID so the tracking view can show
			// its own not-found state.
			return fmt.Sprintf("I couldn't find an order with ID %q to track. Please check the order ID and try again.", orderID),
				&models.ActionMetadata{
					Action:      models.ActionTrackOrder,
					OrderID:     orderID,
					AutoTrigger: true,
				}
		}
		patientName := "Unknown Patient"
		if p, ok := s.store.GetPatientByID(order.PatientID); ok {
			patientName = p.Name
		}
		return fmt.Sprintf("I'll show you the tracking information for order %s (%s) for %s.", order.ID, order.TestName, patientName),
			&models.ActionMetadata{
				Action:      models.ActionTrackOrder,
				OrderID:     order.ID,
				PatientName: patientName,
				AutoTrigger: true,
			}
	}

	if name := utils.ExtractPatientName(text, s.store.PatientNames()); name != "" {
		patients := s.store.GetPatientsByName(name)
		if len(patients) == 0 {
			return fmt.Sprintf("I couldn't find a patient named %q to check order tracking. Please provide more information.", name), nil
		}
		patient := patients[0]
		latest, ok := s.store.LatestOrder(patient.ID)
		if !ok {
			return fmt.Sprintf("%s doesn't have any orders to track.", patient.Name), nil
		}
		return fmt.Sprintf("I'll show you the tracking information for %s's most recent order (%s, Order ID: %s).", patient.Name, latest.TestName, latest.ID),
			&models.ActionMetadata{
				Action:      models.ActionTrackOrder,
				OrderID:     latest.ID,
				PatientName: patient.Name,
				AutoTrigger: true,
			}
	}

	return "I can help you track an order. Please provide an order ID (like O5001) or a patient name to check their most recent order.", nil
}

func (s *AssistantService) handleCreation(text string) (string, *models.ActionMetadata) {
	meta := &models.ActionMetadata{
		Action:      models.ActionCreateOrder,
		AutoTrigger: true,
	}
	if name := utils.ExtractPatientName(text, s.store.PatientNames()); name != "" {
		if patients := s.store.GetPatientsByName(name); len(patients) > 0 {
			meta.PatientID = patients[0].ID
			meta.PatientName = patients[0].Name
		}
	}
	return "I'd be happy to help you create a new order. You can use our order form to select a patient and test type.", meta
}

func (s *AssistantService) handleView(text string) (string, *models.ActionMetadata) {
	orderID := utils.ExtractOrderID(text)
	order, ok := s.store.GetOrderByID(orderID)
	if !ok {
		return fmt.Sprintf("I couldn't find an order with ID %q in our system. Please check the order ID and try again.", orderID), nil
	}
	patientName := "Unknown Patient"
	if p, ok := s.store.GetPatientByID(order.PatientID); ok {
		patientName = p.Name
	}
	return fmt.Sprintf("I found order %s. This is a %s test for %s (ID: %s). The current status is %s.",
			order.ID, order.TestName, patientName, order.PatientID, order.Status),
		&models.ActionMetadata{
			Action:      models.ActionViewOrder,
			OrderID:     order.ID,
			AutoTrigger: true,
		}
}

func (s *AssistantService) handlePatient(text string) (string, *models.ActionMetadata) {
	name := utils.ExtractPatientName(text, s.store.PatientNames())
	patients := s.store.GetPatientsByName(name)
	if len(patients) == 0 {
		return fmt.Sprintf("I couldn't find a patient named %q in our records. Please check the spelling or provide more information.", name), nil
	}
	patient := patients[0]

	switch {
	case utils.WantsResults(text):
		return s.patientResultsReply(patient)
	case utils.WantsOrders(text):
		return s.patientOrdersReply(patient)
	default:
		return s.patientInfoReply(patient)
	}
}

func (s *AssistantService) patientResultsReply(patient models.Patient) (string, *models.ActionMetadata) {
	greeting := fmt.Sprintf("I found information for patient %s (ID: %s). ", patient.Name, patient.ID)

	if latest, ok := s.store.LatestCompletedOrder(patient.ID); ok {
		content := greeting + fmt.Sprintf("The most recent completed test is %s from %s. The status is %s.",
			latest.TestName, latest.OrderedDate, latest.Status)
		if latest.Results != nil {
			content += fmt.Sprintf(" Summary: %s", latest.Results.ResultSummary)
		}
		return content, &models.ActionMetadata{
			Action:      models.ActionViewOrder,
			OrderID:     latest.ID,
			AutoTrigger: true,
		}
	}

	content := greeting + fmt.Sprintf("%s has %d test orders, but none have completed results yet.", patient.Name, len(patient.Orders))
	if latest, ok := s.store.LatestOrder(patient.ID); ok {
		content += fmt.Sprintf(" Would you like to see details of their most recent order (%s)?", latest.TestName)
		return content, &models.ActionMetadata{
			Action:  models.ActionViewOrder,
			OrderID: latest.ID,
		}
	}
	return content, nil
}

func (s *AssistantService) patientOrdersReply(patient models.Patient) (string, *models.ActionMetadata) {
	greeting := fmt.Sprintf("I found information for patient %s (ID: %s). ", patient.Name, patient.ID)

	latest, ok := s.store.LatestOrder(patient.ID)
	if !ok {
		return greeting + fmt.Sprintf("%s doesn't have any test orders in the system.", patient.Name), nil
	}
	content := greeting + fmt.Sprintf("%s has %d test orders. The most recent is a %s ordered on %s with status %q.",
		patient.Name, len(patient.Orders), latest.TestName, latest.OrderedDate, latest.Status)
	return content, &models.ActionMetadata{
		Action:      models.ActionFilterByPatient,
		PatientName: patient.Name,
		PatientID:   patient.ID,
		AutoTrigger: true,
	}
}

func (s *AssistantService) patientInfoReply(patient models.Patient) (string, *models.ActionMetadata) {
	content := fmt.Sprintf("Patient: %s\nID: %s\nDOB: %s\nGender: %s\nContact: %s\n\nThis patient has %d test orders in the system.",
		patient.Name, patient.ID, patient.DateOfBirth, patient.Gender, patient.Email, len(patient.Orders))

	if len(patient.Orders) == 0 {
		return content, nil
	}
	content += " I'll show you their orders now."
	return content, &models.ActionMetadata{
		Action:      models.ActionFilterByPatient,
		PatientName: patient.Name,
		PatientID:   patient.ID,
		AutoTrigger: true,
	}
}

func (s *AssistantService) handleGeneral(text string) (string, *models.ActionMetadata) {
	// A name was extracted but matched nobody: say so instead of giving
	// generic help.
	if name := utils.ExtractPatientName(text, s.store.PatientNames()); name != "" && !s.classifier.ResolvesPatient(name) {
		return fmt.Sprintf("I couldn't find a patient named %q in our records. Please check the spelling or provide more information.", name), nil
	}

	switch utils.HelpTopicFor(text) {
	case "orders":
		return "I can help you with test orders. Would you like to see recent orders or search for a specific one? You can ask about a specific order by ID (like O5001) or ask about a patient's orders by name.", nil
	case "patients":
		return "I can help you find patient information. Please provide a patient name (like 'Show me James Wilson's information') or ask about their test orders or results.", nil
	case "results":
		return "I can help you find test results. Please specify which patient you're interested in (like 'Show me test results for Maria Garcia') or provide an order ID.", nil
	}
	return defaultReply, nil
}

// MetadataForAIResponse inspects a model-generated reply together with the
// user message that prompted it and derives the same action metadata the
// rule-based path would attach.
func (s *AssistantService) MetadataForAIResponse(reply, userMessage string) *models.ActionMetadata {
	lowerReply := strings.ToLower(reply)
	orderID := utils.ExtractOrderID(userMessage)
	name := utils.ExtractPatientName(userMessage, s.store.PatientNames())

	switch {
	case strings.Contains(lowerReply, "tracking") ||
		strings.Contains(lowerReply, "track order") ||
		(strings.Contains(strings.ToLower(userMessage), "track") && orderID != ""):
		if orderID == "" {
			return nil
		}
		order, ok := s.store.GetOrderByID(orderID)
		if !ok {
			return nil
		}
		meta := &models.ActionMetadata{
			Action:      models.ActionTrackOrder,
			OrderID:     orderID,
			AutoTrigger: true,
		}
		if p, ok := s.store.GetPatientByID(order.PatientID); ok {
			meta.PatientName = p.Name
		}
		return meta

	case (strings.Contains(lowerReply, "order details") || strings.Contains(lowerReply, "found order")) && orderID != "":
		if _, ok := s.store.GetOrderByID(orderID); !ok {
			return nil
		}
		return &models.ActionMetadata{
			Action:      models.ActionViewOrder,
			OrderID:     orderID,
			AutoTrigger: true,
		}

	case strings.Contains(lowerReply, "create a new order") ||
		strings.Contains(lowerReply, "place an order") ||
		strings.Contains(lowerReply, "order form"):
		return &models.ActionMetadata{
			Action:      models.ActionCreateOrder,
			AutoTrigger: true,
		}

	case name != "" && strings.Contains(lowerReply, strings.ToLower(name)):
		patients := s.store.GetPatientsByName(name)
		if len(patients) == 0 {
			return nil
		}
		return &models.ActionMetadata{
			Action:      models.ActionFilterByPatient,
			PatientName: patients[0].Name,
			PatientID:   patients[0].ID,
			AutoTrigger: true,
		}
	}
	return nil
}
