package amplitude

import (
	"reflect"
	"strings"
	"testing"
)

func jsonName(field reflect.StructField) string {
	return strings.Split(field.Tag.Get("json"), ",")[0]
}

// TestContractCompliance validates the mapper entry points keep their signatures
func TestContractCompliance(t *testing.T) {
	t.Run("NewPageViewMapper signature", func(t *testing.T) {
		funcType := reflect.TypeOf(NewPageViewMapper)

		if funcType.NumOut() != 2 {
			t.Errorf("NewPageViewMapper should return 2 values, got %d", funcType.NumOut())
		}
		if funcType.Out(1).Name() != "error" {
			t.Errorf("NewPageViewMapper second return should be error, got %s", funcType.Out(1).Name())
		}
	})

	t.Run("Processor methods exist", func(t *testing.T) {
		processorValue := reflect.ValueOf(NewEventProcessor())

		for _, methodName := range []string{"Page", "Identify", "Track"} {
			method := processorValue.MethodByName(methodName)
			if !method.IsValid() {
				t.Errorf("Required method %s not found", methodName)
				continue
			}
			if method.Type().NumIn() != 2 {
				t.Errorf("%s should take 2 parameters (event, credentials)", methodName)
			}
		}

		if processorValue.MethodByName("Page").Type().NumOut() != 2 {
			t.Error("Page should return (request, error)")
		}
		if processorValue.MethodByName("Identify").Type().NumOut() != 1 {
			t.Error("Identify should never return an error")
		}
		if processorValue.MethodByName("Track").Type().NumOut() != 1 {
			t.Error("Track should never return an error")
		}
	})
}

// TestEventStructCompliance validates the input fields read from the edge pipeline
func TestEventStructCompliance(t *testing.T) {
	requiredFields := map[string]map[string]string{
		"Event": {
			"UUID": "uuid", "SessionStart": "session_start", "Session": "session",
			"Identify": "identify", "Client": "client", "Page": "page", "Campaign": "campaign",
		},
		"Session":  {"SessionID": "session_id", "PreviousSessionID": "previous_session_id", "SessionStart": "session_start"},
		"Identify": {"UserID": "user_id", "AnonymousID": "anonymous_id", "EdgeeID": "edgee_id"},
		"Client": {
			"UserAgent": "user_agent", "Locale": "locale", "IP": "ip",
			"OSName": "os_name", "OSVersion": "os_version", "UserAgentModel": "user_agent_model",
			"City": "city", "Region": "region", "CountryCode": "country_code",
		},
		"Page": {"Referrer": "referrer"},
		"Campaign": {
			"Name": "name", "Source": "source", "Medium": "medium", "Term": "term", "Content": "content",
		},
	}

	types := map[string]reflect.Type{
		"Event":    reflect.TypeOf(Event{}),
		"Session":  reflect.TypeOf(Session{}),
		"Identify": reflect.TypeOf(Identify{}),
		"Client":   reflect.TypeOf(Client{}),
		"Page":     reflect.TypeOf(Page{}),
		"Campaign": reflect.TypeOf(Campaign{}),
	}

	for typeName, fields := range requiredFields {
		for fieldName, wireName := range fields {
			field, found := types[typeName].FieldByName(fieldName)
			if !found {
				t.Errorf("Required field %s not found in %s struct", fieldName, typeName)
				continue
			}
			if jsonName(field) != wireName {
				t.Errorf("%s.%s should be encoded as %q, got %q", typeName, fieldName, wireName, jsonName(field))
			}
		}
	}
}

// TestAnalyticsEventCompliance validates the Amplitude field names
func TestAnalyticsEventCompliance(t *testing.T) {
	expected := []string{
		"event_type", "library", "platform", "time", "session_id", "user_id", "device_id",
		"event_properties", "user_properties", "user_agent", "language", "ip", "insert_id",
		"os_name", "os_version", "device_model", "city", "region", "country",
	}

	eventType := reflect.TypeOf(AnalyticsEvent{})
	if eventType.NumField() != len(expected) {
		t.Fatalf("AnalyticsEvent should have %d fields, got %d", len(expected), eventType.NumField())
	}
	for i, name := range expected {
		if got := jsonName(eventType.Field(i)); got != name {
			t.Errorf("field %d should be encoded as %q, got %q", i, name, got)
		}
	}

	optional := map[string]bool{
		"session_id": true, "user_id": true, "user_properties": true,
		"city": true, "region": true, "country": true,
	}
	for i := 0; i < eventType.NumField(); i++ {
		field := eventType.Field(i)
		omits := strings.Contains(field.Tag.Get("json"), "omitempty")
		if optional[jsonName(field)] && !omits {
			t.Errorf("%s should be omitted when unset", jsonName(field))
		}
		if jsonName(field) == "device_id" && omits {
			t.Error("device_id should always be present")
		}
	}
}
