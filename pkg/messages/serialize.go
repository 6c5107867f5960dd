package messages

import (
	"encoding/json"
	"fmt"
)

func SerializeGameData(d *GameData) ([]byte, error) {
	b, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize game data: %v", err)
	}
	return b, nil
}

func DeserializeGameData(b []byte) (*GameData, error) {
	d := &GameData{}
	if err := json.Unmarshal(b, d); err != nil {
		return nil, fmt.Errorf("failed to deserialize game data: %v", err)
	}
	return d, nil
}

func SerializeUpdate(u *Update) ([]byte, error) {
	b, err := json.Marshal(u)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize update: %v", err)
	}
	return b, nil
}

func DeserializeUpdate(b []byte) (*Update, error) {
	u := &Update{}
	if err := json.Unmarshal(b, u); err != nil {
		return nil, fmt.Errorf("failed to deserialize update: %v", err)
	}
	return u, nil
}
