package services

import (
	"crypto/tls"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/punura-itd/CIC-AGRI-IMS/config"
	"github.com/punura-itd/CIC-AGRI-IMS/models"
)

// MQTT topics used by the scanner stations
const (
	// TopicStationAnnounce - stations publish presence here
	TopicStationAnnounce = "agri_ims/scanner/+/announce"

	// topicDecodeFormat - decoded payloads per station
	topicDecodeFormat = "agri_ims/scanner/%s/decode"

	// topicErrorFormat - station-side capture faults per station
	topicErrorFormat = "agri_ims/scanner/%s/error"
)

// StationAnnouncement is the presence message a station publishes
type StationAnnouncement struct {
	StationID string `json:"station_id"`
	Label     string `json:"label"`
	Status    string `json:"status"` // online/offline
	Timestamp int64  `json:"timestamp"`
}

// InterfaceMQTTCaptureService is the MQTT-backed capture provider plus its
// broker lifecycle.
type InterfaceMQTTCaptureService interface {
	InterfaceCaptureProvider
	Connect() error
	Disconnect()
}

// MQTTCaptureService implements the capture device API over MQTT: scanner
// stations register through announce messages and deliver decoded payloads on
// their decode topic. Starting a device subscribes to that topic; stopping
// unsubscribes, which releases the station for other sessions.
type MQTTCaptureService struct {
	DB     *gorm.DB
	Config *config.Config
	Client mqtt.Client

	connected      bool
	connectedMutex sync.RWMutex

	// station id -> active capture session, one binding per station
	active sync.Map
}

// NewMQTTCaptureService creates a new MQTT capture provider
func NewMQTTCaptureService(db *gorm.DB, cfg *config.Config) InterfaceMQTTCaptureService {
	service := &MQTTCaptureService{
		DB:     db,
		Config: cfg,
	}

	opts := mqtt.NewClientOptions().
		AddBroker(cfg.MQTTBrokerURL).
		SetClientID(cfg.MQTTClientID + "-" + uuid.NewString()[:8]).
		SetUsername(cfg.MQTTUsername).
		SetPassword(cfg.MQTTPassword).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(5 * time.Second).
		// Sessions unsubscribe from inside the decode handler; ordered
		// delivery would deadlock there.
		SetOrderMatters(false).
		SetTLSConfig(&tls.Config{InsecureSkipVerify: false})

	opts.OnConnect = func(client mqtt.Client) {
		config.Info("MQTT connected to %s", cfg.MQTTBrokerURL)
		service.setConnected(true)
		if err := service.subscribeAnnounce(); err != nil {
			config.Error("failed to subscribe to station announcements: %v", err)
		}
	}
	opts.OnConnectionLost = func(client mqtt.Client, err error) {
		config.Warning("MQTT connection lost: %v", err)
		service.setConnected(false)
	}

	service.Client = mqtt.NewClient(opts)
	return service
}

// Connect establishes the broker connection
func (s *MQTTCaptureService) Connect() error {
	token := s.Client.Connect()
	if ok := token.WaitTimeout(10 * time.Second); !ok {
		return fmt.Errorf("timed out connecting to MQTT broker %s", s.Config.MQTTBrokerURL)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("failed to connect to MQTT broker: %w", err)
	}
	return nil
}

// Disconnect closes the broker connection
func (s *MQTTCaptureService) Disconnect() {
	s.Client.Disconnect(250)
	s.setConnected(false)
}

func (s *MQTTCaptureService) setConnected(v bool) {
	s.connectedMutex.Lock()
	defer s.connectedMutex.Unlock()
	s.connected = v
}

// IsConnected reports broker reachability
func (s *MQTTCaptureService) IsConnected() bool {
	s.connectedMutex.RLock()
	defer s.connectedMutex.RUnlock()
	return s.connected
}

// subscribeAnnounce tracks station presence in the registry
func (s *MQTTCaptureService) subscribeAnnounce() error {
	token := s.Client.Subscribe(TopicStationAnnounce, 1, func(client mqtt.Client, msg mqtt.Message) {
		var announcement StationAnnouncement
		if err := json.Unmarshal(msg.Payload(), &announcement); err != nil {
			config.Warning("malformed station announcement on %s: %v", msg.Topic(), err)
			return
		}
		if announcement.StationID == "" {
			// Fall back to the station segment of the topic
			parts := strings.Split(msg.Topic(), "/")
			if len(parts) >= 3 {
				announcement.StationID = parts[2]
			}
		}
		if announcement.StationID == "" {
			return
		}
		s.upsertStation(announcement)
	})
	token.Wait()
	return token.Error()
}

// upsertStation records a station announcement in the registry
func (s *MQTTCaptureService) upsertStation(announcement StationAnnouncement) {
	status := models.StationStatusOnline
	if announcement.Status == string(models.StationStatusOffline) {
		status = models.StationStatusOffline
	}
	now := time.Now()

	var station models.ScannerStation
	err := s.DB.Where("station_id = ?", announcement.StationID).First(&station).Error
	if err == gorm.ErrRecordNotFound {
		station = models.ScannerStation{
			StationID:  announcement.StationID,
			Label:      announcement.Label,
			Status:     status,
			LastSeenAt: &now,
		}
		if err := s.DB.Create(&station).Error; err != nil {
			config.Error("failed to register scanner station %s: %v", announcement.StationID, err)
		} else {
			config.Info("registered scanner station %s (%s)", announcement.StationID, announcement.Label)
		}
		return
	}
	if err != nil {
		config.Error("failed to look up scanner station %s: %v", announcement.StationID, err)
		return
	}

	updates := map[string]interface{}{
		"status":       status,
		"last_seen_at": &now,
	}
	if announcement.Label != "" {
		updates["label"] = announcement.Label
	}
	if err := s.DB.Model(&station).Updates(updates).Error; err != nil {
		config.Error("failed to update scanner station %s: %v", announcement.StationID, err)
	}
}

// ListDevices enumerates the registered stations, online ones first
func (s *MQTTCaptureService) ListDevices() ([]CaptureDevice, error) {
	var stations []models.ScannerStation
	if err := s.DB.Order("status asc, station_id asc").Find(&stations).Error; err != nil {
		return nil, fmt.Errorf("failed to enumerate scanner stations: %w", err)
	}

	devices := make([]CaptureDevice, 0, len(stations))
	for _, station := range stations {
		if station.Status != models.StationStatusOnline {
			continue
		}
		devices = append(devices, CaptureDevice{ID: station.StationID, Label: station.Label})
	}
	if len(devices) == 0 {
		return nil, ErrNoCaptureDevices
	}
	return devices, nil
}

// Start binds the decode callback to a station's decode topic. A station
// supports one live binding; a second Start on the same station fails with
// ErrCaptureDeviceBusy until the first session stops.
func (s *MQTTCaptureService) Start(deviceID string, onDecode DecodeCallback, onError CaptureErrorCallback) (CaptureSession, error) {
	if !s.IsConnected() {
		return nil, fmt.Errorf("%w: MQTT broker not connected", ErrNoCaptureDevices)
	}

	session := &mqttCaptureSession{
		service:     s,
		stationID:   deviceID,
		decodeTopic: fmt.Sprintf(topicDecodeFormat, deviceID),
		errorTopic:  fmt.Sprintf(topicErrorFormat, deviceID),
	}

	if _, loaded := s.active.LoadOrStore(deviceID, session); loaded {
		return nil, fmt.Errorf("%w: station %s", ErrCaptureDeviceBusy, deviceID)
	}

	token := s.Client.Subscribe(session.decodeTopic, 1, func(client mqtt.Client, msg mqtt.Message) {
		onDecode(string(msg.Payload()))
	})
	token.Wait()
	if err := token.Error(); err != nil {
		s.active.Delete(deviceID)
		return nil, fmt.Errorf("failed to subscribe to %s: %w", session.decodeTopic, err)
	}

	errToken := s.Client.Subscribe(session.errorTopic, 1, func(client mqtt.Client, msg mqtt.Message) {
		onError(fmt.Errorf("station %s: %s", deviceID, string(msg.Payload())))
	})
	errToken.Wait()
	if err := errToken.Error(); err != nil {
		// Decode subscription stays usable; error delivery is best effort
		config.Warning("failed to subscribe to %s: %v", session.errorTopic, err)
	}

	return session, nil
}

// mqttCaptureSession is one live station binding
type mqttCaptureSession struct {
	service     *MQTTCaptureService
	stationID   string
	decodeTopic string
	errorTopic  string

	stopOnce sync.Once
	stopErr  error
}

// Stop unsubscribes from the station topics and releases the binding. It is
// synchronous: when Stop returns, no further decodes will be delivered.
func (c *mqttCaptureSession) Stop() error {
	c.stopOnce.Do(func() {
		token := c.service.Client.Unsubscribe(c.decodeTopic, c.errorTopic)
		token.Wait()
		c.stopErr = token.Error()
		c.service.active.Delete(c.stationID)
	})
	return c.stopErr
}
