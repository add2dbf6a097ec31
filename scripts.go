package main

const consentScript = `(function () {
  const selectors = [
    'button[aria-label="Accept all"]',
    'button[aria-label="I agree"]',
    'button[aria-label="Alles akzeptieren"]',
    'button.VfPpkd-LgbsSe-OWXEXe-k8QpJ'
  ];
  for (const sel of selectors) {
    const btn = document.querySelector(sel);
    if (btn) {
      btn.click();
      return true;
    }
  }
  return false;
})();`

const scrollScript = `(function () {
  const panel = document.querySelector('div.m6QErb.DxyBCb.kA9KIf.dS8AEf');
  if (!panel) {
    return false;
  }
  panel.scrollTop = panel.scrollHeight;
  return true;
})();`

const panelStateScript = `(function () {
  const panel = document.querySelector('div.m6QErb.DxyBCb.kA9KIf.dS8AEf');
  return JSON.stringify({
    reviews: document.querySelectorAll('div.jJc9Ad').length,
    height: panel ? panel.scrollHeight : 0
  });
})();`

const expandScript = `(function () {
  const buttons = Array.from(document.querySelectorAll('div.jJc9Ad button.w8nwRe.kyuRq'));
  let clicked = 0;
  for (const btn of buttons) {
    try {
      btn.click();
      clicked++;
    } catch (e) {}
  }
  return clicked;
})();`
