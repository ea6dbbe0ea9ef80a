package session

import (
	nixnet "github.com/LoveWonYoung/nixnet"
	"github.com/LoveWonYoung/nixnet/props"
)

func (s *Session) getU32(id props.U32) (uint32, error) {
	h, err := s.Handle()
	if err != nil {
		return 0, err
	}
	return s.env.Session.GetU32(h, id)
}

func (s *Session) setU32(id props.U32, v uint32) error {
	h, err := s.Handle()
	if err != nil {
		return err
	}
	return s.env.Session.SetU32(h, id, v)
}

func (s *Session) getU64(id props.U64) (uint64, error) {
	h, err := s.Handle()
	if err != nil {
		return 0, err
	}
	return s.env.Session.GetU64(h, id)
}

func (s *Session) setU64(id props.U64, v uint64) error {
	h, err := s.Handle()
	if err != nil {
		return err
	}
	return s.env.Session.SetU64(h, id, v)
}

func (s *Session) getBool(id props.Bool) (bool, error) {
	h, err := s.Handle()
	if err != nil {
		return false, err
	}
	return s.env.Session.GetBool(h, id)
}

func (s *Session) setBool(id props.Bool, v bool) error {
	h, err := s.Handle()
	if err != nil {
		return err
	}
	return s.env.Session.SetBool(h, id, v)
}

func (s *Session) getString(id props.String) (string, error) {
	h, err := s.Handle()
	if err != nil {
		return "", err
	}
	return s.env.Session.GetString(h, id)
}

// AutoStart starts the session on the first read or write.
func (s *Session) AutoStart() (bool, error)  { return s.getBool(props.SessionAutoStart) }
func (s *Session) SetAutoStart(v bool) error { return s.setBool(props.SessionAutoStart, v) }

// QueueSize is the number of frames or values the session queue holds.
func (s *Session) QueueSize() (uint32, error)  { return s.getU32(props.SessionQueueSize) }
func (s *Session) SetQueueSize(v uint32) error { return s.setU32(props.SessionQueueSize, v) }

func (s *Session) NumPending() (uint32, error)  { return s.getU32(props.SessionNumPending) }
func (s *Session) NumUnused() (uint32, error)   { return s.getU32(props.SessionNumUnused) }
func (s *Session) NumInList() (uint32, error)   { return s.getU32(props.SessionNumInList) }
func (s *Session) NumFrames() (uint32, error)   { return s.getU32(props.SessionNumFrames) }
func (s *Session) ClusterName() (string, error) { return s.getString(props.SessionClusterName) }

// NativeMode is the mode as the driver reports it.
func (s *Session) NativeMode() (Mode, error) {
	v, err := s.getU32(props.SessionMode)
	return Mode(v), err
}

func (s *Session) DatabaseName() (string, error) { return s.getString(props.SessionDatabaseName) }

func (s *Session) InterfaceName() (string, error) { return s.getString(props.SessionInterfaceName) }

func (s *Session) Protocol() (nixnet.Protocol, error) {
	v, err := s.getU32(props.SessionProtocol)
	return nixnet.Protocol(v), err
}

func (s *Session) ApplicationProtocol() (uint32, error) {
	return s.getU32(props.SessionApplicationProtocol)
}

func (s *Session) PayloadLengthMax() (uint32, error) {
	return s.getU32(props.SessionPayloadLengthMax)
}

// ResampleRate is the waveform rate in Hz.
func (s *Session) ResampleRate() (float64, error) {
	h, err := s.Handle()
	if err != nil {
		return 0, err
	}
	return s.env.Session.GetF64(h, props.SessionResampleRate)
}

func (s *Session) SetResampleRate(v float64) error {
	h, err := s.Handle()
	if err != nil {
		return err
	}
	return s.env.Session.SetF64(h, props.SessionResampleRate, v)
}

// Interface properties. They configure the interface the session runs on
// and can only be set before the interface starts.

// BaudRate is the nominal bus rate in bit/s.
func (s *Session) BaudRate() (uint64, error)  { return s.getU64(props.SessionIntfBaudRate) }
func (s *Session) SetBaudRate(v uint64) error { return s.setU64(props.SessionIntfBaudRate, v) }

func (s *Session) CANFDBaudRate() (uint64, error) { return s.getU64(props.SessionIntfCANFDBaudRate) }
func (s *Session) SetCANFDBaudRate(v uint64) error {
	return s.setU64(props.SessionIntfCANFDBaudRate, v)
}

func (s *Session) ListenOnly() (bool, error) { return s.getBool(props.SessionIntfCANListenOnly) }
func (s *Session) SetListenOnly(v bool) error {
	return s.setBool(props.SessionIntfCANListenOnly, v)
}

func (s *Session) Termination() (Termination, error) {
	v, err := s.getU32(props.SessionIntfCANTermination)
	return Termination(v), err
}

func (s *Session) SetTermination(t Termination) error {
	return s.setU32(props.SessionIntfCANTermination, uint32(t))
}

func (s *Session) LINTermination() (Termination, error) {
	v, err := s.getU32(props.SessionIntfLINTerm)
	return Termination(v), err
}

func (s *Session) SetLINTermination(t Termination) error {
	return s.setU32(props.SessionIntfLINTerm, uint32(t))
}

func (s *Session) CANTxIOMode() (CANTxIOMode, error) {
	v, err := s.getU32(props.SessionIntfCANTxIOMode)
	return CANTxIOMode(v), err
}

func (s *Session) SetCANTxIOMode(m CANTxIOMode) error {
	return s.setU32(props.SessionIntfCANTxIOMode, uint32(m))
}

// EchoTx copies transmitted frames into the input stream, flagged as echo.
func (s *Session) EchoTx() (bool, error)  { return s.getBool(props.SessionIntfEchoTx) }
func (s *Session) SetEchoTx(v bool) error { return s.setBool(props.SessionIntfEchoTx, v) }

func (s *Session) BusErrorToInStream() (bool, error) {
	return s.getBool(props.SessionIntfBusErrorToInStrm)
}

func (s *Session) SetBusErrorToInStream(v bool) error {
	return s.setBool(props.SessionIntfBusErrorToInStrm, v)
}

func (s *Session) StartTriggerToInStream() (bool, error) {
	return s.getBool(props.SessionIntfStartTrigToInStrm)
}

func (s *Session) SetStartTriggerToInStream(v bool) error {
	return s.setBool(props.SessionIntfStartTrigToInStrm, v)
}

func (s *Session) LINMaster() (bool, error)  { return s.getBool(props.SessionIntfLINMaster) }
func (s *Session) SetLINMaster(v bool) error { return s.setBool(props.SessionIntfLINMaster, v) }

// LINSleep requests a LIN sleep state change.
func (s *Session) SetLINSleep(v uint32) error { return s.setU32(props.SessionIntfLINSleep, v) }
