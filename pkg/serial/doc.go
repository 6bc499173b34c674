/*
Package serial writes payloads to a serial device configured for raw 8N1 transfer.

# How it works:

The device is opened read/write without becoming the controlling terminal, then switched to raw mode: no canonical processing, no echo, no signals, no output post-processing, 8 data bits, no parity, 1 stop bit, and no software or hardware flow control.
Only the baud rate is configurable, see Config.

Send writes a payload once, then blocks until the device reports that everything queued has been transmitted.
There are no retries and no timeouts, a short write is reported as ErrPartialWrite and is expected to be fatal to the caller.

WithPort is the preferred entry point, since it guarantees the device is closed on every exit path.

Only Linux is supported, other platforms return errors wrapping errors.ErrUnsupported.
*/
package serial
